// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package ast

import (
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(expr Expr) string {
	var sb strings.Builder
	exprString(&sb, false, expr)
	return sb.String()
}

// PatternString returns a string representation of a pattern.
func PatternString(p Pattern) string {
	var sb strings.Builder
	patternString(&sb, false, p)
	return sb.String()
}

// TypeExprString returns a string representation of a type expression.
func TypeExprString(t TypeExpr) string {
	var sb strings.Builder
	typeExprString(&sb, false, t)
	return sb.String()
}

func exprString(sb *strings.Builder, simple bool, expr Expr) {
	switch et := expr.(type) {
	case *Ident:
		sb.WriteString(et.Name)

	case *Literal:
		if et.Kind == TextLiteral {
			sb.WriteByte('"')
			sb.WriteString(et.Syntax)
			sb.WriteByte('"')
			return
		}
		sb.WriteString(et.Syntax)

	case *List:
		sb.WriteByte('[')
		for i, item := range et.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, item)
		}
		sb.WriteByte(']')

	case *Tuple:
		sb.WriteByte('(')
		for i, item := range et.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			exprString(sb, false, item)
		}
		sb.WriteByte(')')

	case *Record:
		if len(et.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, field := range et.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			if field.Spread {
				sb.WriteString("...")
			} else {
				sb.WriteString(field.Name.Name)
				sb.WriteString(": ")
			}
			exprString(sb, false, field.Value)
		}
		sb.WriteString(" }")

	case *FieldAccess:
		exprString(sb, true, et.Base)
		sb.WriteByte('.')
		sb.WriteString(et.Field.Name)

	case *Call:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Func)
		for _, arg := range et.Args {
			sb.WriteByte(' ')
			exprString(sb, true, arg)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *Lambda:
		if simple {
			sb.WriteByte('(')
		}
		for i, param := range et.Params {
			if i > 0 {
				sb.WriteByte(' ')
			}
			patternString(sb, true, param)
		}
		sb.WriteString(" => ")
		exprString(sb, false, et.Body)
		if simple {
			sb.WriteByte(')')
		}

	case *Match:
		if simple {
			sb.WriteByte('(')
		}
		if et.Scrutinee != nil {
			exprString(sb, true, et.Scrutinee)
			sb.WriteByte(' ')
		}
		sb.WriteString("match")
		for _, arm := range et.Arms {
			sb.WriteString(" | ")
			patternString(sb, false, arm.Pattern)
			if arm.Guard != nil {
				sb.WriteString(" when ")
				exprString(sb, false, arm.Guard)
			}
			sb.WriteString(" => ")
			exprString(sb, false, arm.Body)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *If:
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString("if ")
		exprString(sb, false, et.Cond)
		sb.WriteString(" then ")
		exprString(sb, false, et.Then)
		sb.WriteString(" else ")
		exprString(sb, false, et.Else)
		if simple {
			sb.WriteByte(')')
		}

	case *Binary:
		if simple {
			sb.WriteByte('(')
		}
		exprString(sb, true, et.Left)
		sb.WriteByte(' ')
		sb.WriteString(et.Op)
		sb.WriteByte(' ')
		exprString(sb, true, et.Right)
		if simple {
			sb.WriteByte(')')
		}

	case *Block:
		sb.WriteString("{ ")
		for i, item := range et.Items {
			if i > 0 {
				sb.WriteString("; ")
			}
			if item.Kind == LetItem {
				patternString(sb, false, item.Pattern)
				sb.WriteString(" = ")
			}
			exprString(sb, false, item.Expr)
		}
		sb.WriteString(" }")
	}
}

func patternString(sb *strings.Builder, simple bool, p Pattern) {
	switch pt := p.(type) {
	case *PWildcard:
		sb.WriteByte('_')

	case *PIdent:
		sb.WriteString(pt.Name.Name)

	case *PLiteral:
		exprString(sb, false, pt.Literal)

	case *PConstructor:
		if len(pt.Args) == 0 {
			sb.WriteString(pt.Name.Name)
			return
		}
		if simple {
			sb.WriteByte('(')
		}
		sb.WriteString(pt.Name.Name)
		for _, arg := range pt.Args {
			sb.WriteByte(' ')
			patternString(sb, true, arg)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *PTuple:
		sb.WriteByte('(')
		for i, item := range pt.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			patternString(sb, false, item)
		}
		sb.WriteByte(')')

	case *PRecord:
		sb.WriteString("{ ")
		for i, field := range pt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name.Name)
			if field.Pattern != nil {
				sb.WriteString(": ")
				patternString(sb, false, field.Pattern)
			}
		}
		sb.WriteString(" }")
	}
}

func typeExprString(sb *strings.Builder, simple bool, t TypeExpr) {
	switch tt := t.(type) {
	case *TypeName:
		sb.WriteString(tt.Name)

	case *TypeApply:
		if simple {
			sb.WriteByte('(')
		}
		typeExprString(sb, true, tt.Base)
		for _, arg := range tt.Args {
			sb.WriteByte(' ')
			typeExprString(sb, true, arg)
		}
		if simple {
			sb.WriteByte(')')
		}

	case *TypeFunc:
		if simple {
			sb.WriteByte('(')
		}
		for _, param := range tt.Params {
			typeExprString(sb, true, param)
			sb.WriteString(" -> ")
		}
		typeExprString(sb, false, tt.Result)
		if simple {
			sb.WriteByte(')')
		}

	case *TypeRecord:
		if len(tt.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, field := range tt.Fields {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(field.Name.Name)
			sb.WriteString(": ")
			typeExprString(sb, false, field.Type)
		}
		sb.WriteString(" }")

	case *TypeTuple:
		sb.WriteByte('(')
		for i, item := range tt.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			typeExprString(sb, false, item)
		}
		sb.WriteByte(')')

	case *TypeBranded:
		typeExprString(sb, true, tt.Inner)
		sb.WriteByte('!')
	}
}
