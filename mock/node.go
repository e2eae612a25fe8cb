package mock

import (
	"github.com/stretchr/testify/mock"

	"github.com/cemc-oper/takler-util/models"
)

// Node mocks the workflow engine's node for configuration tests
type Node struct {
	mock.Mock
}

func (n *Node) AddParameter(params map[string]string) {
	n.Called(params)
}

func (n *Node) AddRepeat(repeat models.RepeatDate) {
	n.Called(repeat)
}
