// Package question serves the fixed per-role interview prompts.
package question

import (
	"fmt"

	"github.com/santhoshini-18/interview-assistance/internal/model"
)

type basePrompt struct {
	category string
	prompt   string
}

// Each role owns a fixed, ordered bank of base prompts. Sessions longer
// than the bank cycle through it.
var banksByRole = map[model.Role][]basePrompt{
	model.RoleSoftware: {
		{"Algorithms", "Explain how you would implement a binary search tree and discuss its time complexity."},
		{"System Design", "Design a scalable chat application. What technologies and architecture would you use?"},
		{"Coding Practices", "What are the SOLID principles? Provide examples of how you've applied them."},
	},
	model.RoleAIML: {
		{"Machine Learning", "Explain the difference between supervised and unsupervised learning with examples."},
		{"Deep Learning", "What are neural networks? Explain the concept of backpropagation."},
		{"Model Evaluation", "How do you handle overfitting in machine learning models?"},
	},
	model.RoleData: {
		{"SQL", "Write a SQL query to find the second highest salary from an employee table."},
		{"Data Visualization", "What factors do you consider when choosing between different types of charts?"},
		{"Analytics", "Explain A/B testing and its importance in data-driven decision making."},
	},
	model.RoleSecurity: {
		{"Network Security", "Explain the concept of public key cryptography and its applications."},
		{"Web Security", "What are common web vulnerabilities and how do you prevent them?"},
		{"Security Protocols", "Describe the OAuth 2.0 flow and its security considerations."},
	},
}

// Get returns the question for the given role and zero-based index.
// The prompt bank is indexed modulo its length; the returned ordinal is
// index+1 and keeps increasing even as prompts repeat. Callers must
// pass a valid role.
func Get(role model.Role, index int) model.Question {
	bank, ok := banksByRole[role]
	if !ok {
		panic(fmt.Sprintf("question: unknown role %q", role))
	}
	base := bank[index%len(bank)]
	return model.Question{
		Ordinal:  index + 1,
		Category: base.category,
		Prompt:   base.prompt,
	}
}

// BankSize returns the number of base prompts for a role.
func BankSize(role model.Role) int {
	return len(banksByRole[role])
}
