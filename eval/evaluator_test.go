/*
File   : lox-mix/eval/evaluator_test.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
)

// run lexes, parses, and interprets source against a fresh Evaluator,
// returning everything written to stdout and the error (if any) from
// Interpret.
func run(t *testing.T, source string) (string, error) {
	t.Helper()

	lx := lexer.NewLexer(source)
	tokens := lx.ScanTokens()
	require.Empty(t, lx.Errors())

	p := parser.NewParser(tokens)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors())

	var buf bytes.Buffer
	e := NewEvaluator(&buf)
	err := e.Interpret(stmts)
	return buf.String(), err
}

func TestInterpret_ArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `var a = "hi"; var b = " there"; print a + b;`)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestInterpret_BlockScopingShadowsThenRestores(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		{ var a = 2; print a; }
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestInterpret_DivisionByZeroIsRuntimeError(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot divide by zero")
	assert.Empty(t, out)
}

func TestInterpret_WhileLoop(t *testing.T) {
	out, err := run(t, `var i = 0; while (i < 3) { print i; i = i + 1; }`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopMatchesWhileEquivalent(t *testing.T) {
	out, err := run(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ClockIsNonNegative(t *testing.T) {
	out, err := run(t, `print clock() >= 0;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_AddingStringAndNumberIsRuntimeError(t *testing.T) {
	_, err := run(t, `"a" + 1;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Wrong types for addition")
}

func TestInterpret_AssigningUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `x = 5;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is never assigned")
}

func TestInterpret_ReadingUndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print x;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is never assigned")
}

func TestInterpret_GroupingIsTransparent(t *testing.T) {
	out, err := run(t, `print (1 + 2) * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "9\n", out)
}

func TestInterpret_DoubleNegationBoolean(t *testing.T) {
	out, err := run(t, `print !!true; print !!false; print !!nil; print !!1;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"true", "false", "false", "true"}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestInterpret_ShortCircuitOr_DoesNotEvaluateRight(t *testing.T) {
	// y is never defined; if `or` failed to short-circuit, evaluating y
	// would raise a runtime error.
	out, err := run(t, `print true or y;`)
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)
}

func TestInterpret_ShortCircuitAnd_DoesNotEvaluateRight(t *testing.T) {
	out, err := run(t, `print false and y;`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_EqualityIsStructuralAcrossKinds(t *testing.T) {
	out, err := run(t, `print 0 == "0"; print nil == false; print 1 == 1.0;`)
	require.NoError(t, err)
	assert.Equal(t, []string{"false", "false", "true"}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestInterpret_CallArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `clock(1);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 0 arguments but got 1")
}

func TestInterpret_CallOnNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions")
}

func TestInterpret_BindingsSurviveAcrossInterpretCalls(t *testing.T) {
	var buf bytes.Buffer
	e := NewEvaluator(&buf)

	lx := lexer.NewLexer(`var x = 1;`)
	p := parser.NewParser(lx.ScanTokens())
	require.NoError(t, e.Interpret(p.Parse()))

	lx2 := lexer.NewLexer(`print x;`)
	p2 := parser.NewParser(lx2.ScanTokens())
	require.NoError(t, e.Interpret(p2.Parse()))

	assert.Equal(t, "1\n", buf.String())
}

func TestInterpret_RuntimeErrorDuringReplDoesNotCorruptGlobals(t *testing.T) {
	var buf bytes.Buffer
	e := NewEvaluator(&buf)

	lx := lexer.NewLexer(`var x = 1; print 1 / 0;`)
	p := parser.NewParser(lx.ScanTokens())
	err := e.Interpret(p.Parse())
	require.Error(t, err)

	buf.Reset()
	lx2 := lexer.NewLexer(`print x;`)
	p2 := parser.NewParser(lx2.ScanTokens())
	require.NoError(t, e.Interpret(p2.Parse()))
	assert.Equal(t, "1\n", buf.String())
}
