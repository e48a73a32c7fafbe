package model

// Bug is a reported defect: a short title plus a free-form description.
// The struct tags are the only declaration of the wire shape. The json tag names
// the field, required marks it as mandatory in request payloads and description
// documents it in the published API description.
type Bug struct {
	Title       string `json:"title" required:"true" description:"Short summary of the bug"`
	Description string `json:"description" required:"true" description:"Details needed to reproduce the bug"`
}
