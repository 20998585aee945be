package optargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args   []string
	result Result
	errMsg string
}

func noErrorCase(args ...string) parseCase {
	return parseCase{args: args, result: Success}
}

func errorCase(result Result, errMsg string, args ...string) parseCase {
	return parseCase{args: args, result: result, errMsg: errMsg}
}

func (me parseCase) Run(t *testing.T, newParser func() *Parser) {
	p := newParser()
	res := p.Parse(me.args)
	assert.EqualValues(t, me.result, res, "%q", me.args)
	if me.result == Success || me.result == HelpRequested {
		assert.NoError(t, p.Err(), "%q", me.args)
		return
	}
	assert.EqualValues(t, me.errMsg, p.LastError(), "%q", me.args)
	assert.EqualError(t, p.Err(), me.errMsg, "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, newParser func() *Parser) {
	for _, _case := range cases {
		_case.Run(t, newParser)
	}
}
