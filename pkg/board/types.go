package board

// Question is a question together with its candidate answers.
// ID is assigned by the service; clients never send one.
type Question struct {
	ID      string   `json:"id,omitempty"`
	Prompt  string   `json:"question"`
	Answers []string `json:"answers"`
}

// CreateRequest asks the service to store a new question.
type CreateRequest struct {
	Prompt  string   `json:"question"`
	Answers []string `json:"answers"`
}
