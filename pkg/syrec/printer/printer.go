// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package printer renders an analyzed ir.Program back into SyReC surface
// syntax. It is the seam a downstream textual pretty-printer plugs into;
// the default implementation here exists so the seam is exercised, not
// because SyReC round-tripping is itself a goal of this repository.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/syrec-lang/syrec/pkg/syrec/ir"
)

// Printer renders an ir.Program to w in some textual form.
type Printer interface {
	Print(w io.Writer, program *ir.Program) error
}

// SyrecPrinter is the default Printer: it renders a Program back into the
// SyReC concrete syntax the analyzer's own parse-tree contract describes.
type SyrecPrinter struct{}

// New constructs the default SyReC-surface-syntax printer.
func New() *SyrecPrinter {
	return &SyrecPrinter{}
}

// Print writes one "module ... { ... }" block per module in program, in
// declaration order.
func (p *SyrecPrinter) Print(w io.Writer, program *ir.Program) error {
	for i, m := range program.Modules {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}

		if err := printModule(w, m); err != nil {
			return err
		}
	}

	return nil
}

func printModule(w io.Writer, m *ir.Module) error {
	var b strings.Builder

	fmt.Fprintf(&b, "module %s(%s) {\n", m.Identifier, joinParameters(m.Parameters))

	for _, l := range m.Locals {
		fmt.Fprintf(&b, "\t%s %s(%d)\n", kindKeyword(l.Kind), l.Identifier, l.Bitwidth)
	}

	printStatements(&b, m.Statements, 1)
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())

	return err
}

func joinParameters(params []*ir.Variable) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s(%d)", p.Kind.String(), p.Identifier, p.Bitwidth)
	}

	return strings.Join(parts, ", ")
}

func kindKeyword(k ir.VariableKind) string {
	if k == ir.State {
		return "state"
	}

	return "wire"
}

func printStatements(b *strings.Builder, stmts []ir.Statement, depth int) {
	for _, s := range stmts {
		printStatement(b, s, depth)
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
}

func printStatement(b *strings.Builder, s ir.Statement, depth int) {
	indent(b, depth)

	switch n := s.(type) {
	case *ir.Assign:
		fmt.Fprintf(b, "%s %s %s\n", printAccess(n.Target), n.Op.Symbol(), printExpr(n.Rhs))
	case *ir.UnaryAssign:
		fmt.Fprintf(b, "%s%s\n", n.Op.Symbol(), printAccess(n.Target))
	case *ir.Swap:
		fmt.Fprintf(b, "%s <=> %s\n", printAccess(n.Lhs), printAccess(n.Rhs))
	case *ir.If:
		printIf(b, n, depth)
	case *ir.For:
		printFor(b, n, depth)
	case *ir.Call:
		fmt.Fprintf(b, "call %s(%s)\n", n.Target.Identifier, strings.Join(n.Arguments, ", "))
	case *ir.Uncall:
		fmt.Fprintf(b, "uncall %s(%s)\n", n.Target.Identifier, strings.Join(n.Arguments, ", "))
	case *ir.Skip:
		b.WriteString("skip\n")
	default:
		b.WriteString("<unknown statement>\n")
	}
}

func printIf(b *strings.Builder, n *ir.If, depth int) {
	fmt.Fprintf(b, "if %s then\n", printExpr(n.Cond))
	printStatements(b, n.ThenBody, depth+1)
	indent(b, depth)
	b.WriteString("else\n")
	printStatements(b, n.ElseBody, depth+1)
	indent(b, depth)
	fmt.Fprintf(b, "fi %s\n", printExpr(n.FiCond))
}

func printFor(b *strings.Builder, n *ir.For, depth int) {
	b.WriteString("for ")

	if v, ok := n.LoopVar.Get(); ok {
		fmt.Fprintf(b, "%s = ", v)
	}

	fmt.Fprintf(b, "%s to %s step %s do\n", printNumber(n.Range.From), printNumber(n.Range.To), printNumber(n.Step))
	printStatements(b, n.Body, depth+1)
	indent(b, depth)
	b.WriteString("rof\n")
}

func printExpr(e ir.Expression) string {
	switch n := e.(type) {
	case *ir.Numeric:
		return printNumber(n.Value)
	case *ir.VariableExpr:
		return printAccess(n.Access)
	case *ir.Binary:
		return fmt.Sprintf("(%s %s %s)", printExpr(n.Lhs), n.Op.Symbol(), printExpr(n.Rhs))
	case *ir.Shift:
		return fmt.Sprintf("(%s %s %s)", printExpr(n.Lhs), n.Op.Symbol(), printNumber(n.Amount))
	default:
		return "<unknown expression>"
	}
}

func printNumber(n ir.Number) string {
	switch v := n.(type) {
	case *ir.ConstantInt:
		return fmt.Sprintf("%d", v.Value)
	case *ir.LoopVarRef:
		return v.Name
	case *ir.ConstExpr:
		return fmt.Sprintf("(%s %s %s)", printNumber(v.Lhs), numberOpSymbol(v.Op), printNumber(v.Rhs))
	default:
		return "<unknown number>"
	}
}

func numberOpSymbol(op ir.NumberOp) string {
	switch op {
	case ir.NumberAdd:
		return "+"
	case ir.NumberSubtract:
		return "-"
	case ir.NumberMultiply:
		return "*"
	default:
		return "/"
	}
}

func printAccess(a *ir.VariableAccess) string {
	var b strings.Builder

	b.WriteString(a.Variable.Identifier)

	for _, idx := range a.Indices {
		fmt.Fprintf(&b, "[%s]", printExpr(idx))
	}

	if r, ok := a.Range.Get(); ok {
		fmt.Fprintf(&b, ".%s:%s", printNumber(r.Start), printNumber(r.End))
	}

	return b.String()
}
