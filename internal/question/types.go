package question

// Seed defines the question seed schema loaded from JSON or YAML.
type Seed struct {
	Version   int     `json:"version" yaml:"version"`
	Questions []Entry `json:"questions" yaml:"questions"`
}

// Entry is a single seeded question with its candidate answers.
type Entry struct {
	Prompt  string   `json:"question" yaml:"question"`
	Answers []string `json:"answers" yaml:"answers"`
}
