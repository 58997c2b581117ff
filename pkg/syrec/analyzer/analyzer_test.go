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
package analyzer_test

import (
	"github.com/syrec-lang/syrec/pkg/syrec/analyzer"
	"github.com/syrec-lang/syrec/pkg/syrec/parsetree"
	"github.com/syrec-lang/syrec/pkg/util/source"
)

// pos is a placeholder source position good enough for hand-built parse
// trees that don't care about their own line/column.
var pos = source.NewPosition(1, 1)

func intLit(v uint) *parsetree.IntLiteral {
	return &parsetree.IntLiteral{Pos: pos, Value: v}
}

func numExpr(n parsetree.NumberNode) *parsetree.NumberExprNode {
	return &parsetree.NumberExprNode{Pos: pos, Number: n}
}

func signalExpr(identifier string, indices ...parsetree.ExpressionNode) *parsetree.SignalExprNode {
	return &parsetree.SignalExprNode{Pos: pos, Access: &parsetree.VariableAccess{
		Pos: pos, Identifier: identifier, Indices: indices,
	}}
}

func binExpr(lhs parsetree.ExpressionNode, op parsetree.ExprBinOp, rhs parsetree.ExpressionNode) *parsetree.BinaryExprNode {
	return &parsetree.BinaryExprNode{Pos: pos, Lhs: lhs, Op: op, Rhs: rhs}
}

// inParam builds a one-dimension-of-1, given-bitwidth "in" parameter.
func inParam(identifier string, bitwidth uint) *parsetree.Param {
	return &parsetree.Param{Pos: pos, Kind: parsetree.ParamIn, Identifier: identifier, Bitwidth: intLit(bitwidth)}
}

func outParam(identifier string, bitwidth uint) *parsetree.Param {
	return &parsetree.Param{Pos: pos, Kind: parsetree.ParamOut, Identifier: identifier, Bitwidth: intLit(bitwidth)}
}

func inoutParam(identifier string, bitwidth uint) *parsetree.Param {
	return &parsetree.Param{Pos: pos, Kind: parsetree.ParamInout, Identifier: identifier, Bitwidth: intLit(bitwidth)}
}

func module(identifier string, params []*parsetree.Param, statements []parsetree.StatementNode) *parsetree.Module {
	return &parsetree.Module{Pos: pos, Identifier: identifier, Parameters: params, Statements: statements}
}

func program(modules ...*parsetree.Module) *parsetree.Program {
	return &parsetree.Program{Modules: modules}
}

func newAnalyzer() *analyzer.Analyzer {
	return analyzer.New(analyzer.DefaultSettings())
}
