package node_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atkphpframework/atk/pkg/node"
	"github.com/atkphpframework/atk/pkg/record"
)

type traceListener struct {
	name   string
	trace  *[]string
	preErr error
}

func (l *traceListener) PreAction(action node.Action, _ record.Record) error {
	*l.trace = append(*l.trace, l.name+":pre:"+string(action))
	return l.preErr
}

func (l *traceListener) PostAction(action node.Action, _ record.Record) {
	*l.trace = append(*l.trace, l.name+":post:"+string(action))
}

func TestNotifyRunsListenersInRegistrationOrder(t *testing.T) {
	n := node.New("member")
	var trace []string
	n.AddListener(&traceListener{name: "audit", trace: &trace})
	n.AddListener(&traceListener{name: "mail", trace: &trace})

	require.NoError(t, n.NotifyPre(node.ActionAdd, record.Record{}))
	n.NotifyPost(node.ActionAdd, record.Record{})

	assert.Equal(t, []string{
		"audit:pre:add",
		"mail:pre:add",
		"audit:post:add",
		"mail:post:add",
	}, trace)
}

func TestNotifyPreFirstErrorAbortsChain(t *testing.T) {
	n := node.New("member")
	var trace []string
	veto := errors.New("not allowed")
	n.AddListener(&traceListener{name: "gate", trace: &trace, preErr: veto})
	n.AddListener(&traceListener{name: "mail", trace: &trace})

	err := n.NotifyPre(node.ActionDelete, record.Record{})
	require.ErrorIs(t, err, veto)
	assert.Equal(t, []string{"gate:pre:delete"}, trace)
}

func TestAddListenerIgnoresNil(t *testing.T) {
	n := node.New("member")
	n.AddListener(nil)
	require.NoError(t, n.NotifyPre(node.ActionUpdate, record.Record{}))
}
