/*
File   : lox-mix/environment/environment_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/akashmaji946/lox-mix/value"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", value.Number{Value: 10})

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Value: 10}, v)
}

func TestGet_BoundToNilIsPresent(t *testing.T) {
	// Presence is key membership, not "value is not nil".
	env := New(nil)
	env.Define("x", value.Nil{})

	v, ok := env.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Nil{}, v)
}

func TestGet_UndefinedReportsAbsent(t *testing.T) {
	env := New(nil)
	_, ok := env.Get("missing")
	assert.False(t, ok)
}

func TestGet_WalksEnclosingChain(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	v, ok := inner.Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.Number{Value: 1}, v)
}

func TestDefine_ShadowsOuterScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)
	inner.Define("x", value.Number{Value: 2})

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	assert.Equal(t, value.Number{Value: 2}, innerVal)
	assert.Equal(t, value.Number{Value: 1}, outerVal)
}

func TestAssign_UpdatesNearestDefiningScope(t *testing.T) {
	outer := New(nil)
	outer.Define("x", value.Number{Value: 1})
	inner := New(outer)

	ok := inner.Assign("x", value.Number{Value: 99})
	assert.True(t, ok)

	outerVal, _ := outer.Get("x")
	assert.Equal(t, value.Number{Value: 99}, outerVal)
	assert.NotContains(t, inner.Values, "x")
}

func TestAssign_UndefinedReportsFalse(t *testing.T) {
	env := New(nil)
	ok := env.Assign("missing", value.Number{Value: 1})
	assert.False(t, ok)
}
