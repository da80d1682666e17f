package registry

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Predicate reports whether a system matches a parsed filter.
type Predicate func(System) bool

// Declarations returns the fields available to AIP-160 system filters.
func Declarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("id", filtering.TypeString),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("culture", filtering.TypeString),
		filtering.DeclareIdent("type", filtering.TypeString),
		filtering.DeclareIdent("base", filtering.TypeInt),
	)
}

// ParseFilter compiles an AIP-160 expression such as
// `base = 20 AND type != "subtractive-vigesimal"`. A blank expression
// matches every system.
func ParseFilter(filterStr string) (Predicate, error) {
	if strings.TrimSpace(filterStr) == "" {
		return func(System) bool { return true }, nil
	}

	decls, err := Declarations()
	if err != nil {
		return nil, fmt.Errorf("create declarations: %w", err)
	}
	filter, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}
	return compileExpr(filter.CheckedExpr.GetExpr())
}

// Filter returns the systems accepted by pred, preserving order.
func Filter(systems []System, pred Predicate) []System {
	out := make([]System, 0, len(systems))
	for _, system := range systems {
		if pred(system) {
			out = append(out, system)
		}
	}
	return out
}

func compileExpr(e *expr.Expr) (Predicate, error) {
	if e == nil {
		return nil, fmt.Errorf("nil expression")
	}
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return nil, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}
	return compileCall(call.CallExpr)
}

func compileCall(call *expr.Expr_Call) (Predicate, error) {
	switch call.GetFunction() {
	case "AND":
		left, right, err := compilePair(call.GetArgs())
		if err != nil {
			return nil, err
		}
		return func(s System) bool { return left(s) && right(s) }, nil
	case "OR":
		left, right, err := compilePair(call.GetArgs())
		if err != nil {
			return nil, err
		}
		return func(s System) bool { return left(s) || right(s) }, nil
	case "NOT":
		if len(call.GetArgs()) != 1 {
			return nil, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := compileExpr(call.GetArgs()[0])
		if err != nil {
			return nil, err
		}
		return func(s System) bool { return !inner(s) }, nil
	case "=", "!=", "<", "<=", ">", ">=":
		return compileComparison(call.GetFunction(), call.GetArgs())
	default:
		return nil, fmt.Errorf("unsupported function: %s", call.GetFunction())
	}
}

func compilePair(args []*expr.Expr) (Predicate, Predicate, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("logical operator requires 2 arguments")
	}
	left, err := compileExpr(args[0])
	if err != nil {
		return nil, nil, err
	}
	right, err := compileExpr(args[1])
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func compileComparison(op string, args []*expr.Expr) (Predicate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return nil, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	constant, ok := args[1].GetExprKind().(*expr.Expr_ConstExpr)
	if !ok {
		return nil, fmt.Errorf("expected constant, got %T", args[1].GetExprKind())
	}

	field := ident.IdentExpr.GetName()
	switch value := constant.ConstExpr.GetConstantKind().(type) {
	case *expr.Constant_Int64Value:
		if field != "base" {
			return nil, fmt.Errorf("field %s is not numeric", field)
		}
		want := value.Int64Value
		return func(s System) bool { return compare(int64(s.Base), want, op) }, nil
	case *expr.Constant_StringValue:
		get, ok := stringFields[field]
		if !ok {
			return nil, fmt.Errorf("unknown field: %s", field)
		}
		want := value.StringValue
		return func(s System) bool { return compare(get(s), want, op) }, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", value)
	}
}

var stringFields = map[string]func(System) string{
	"id":      func(s System) string { return s.ID },
	"name":    func(s System) string { return s.Name },
	"culture": func(s System) string { return s.Culture },
	"type":    func(s System) string { return s.Type },
}

func compare[T int64 | string](got, want T, op string) bool {
	switch op {
	case "=":
		return got == want
	case "!=":
		return got != want
	case "<":
		return got < want
	case "<=":
		return got <= want
	case ">":
		return got > want
	case ">=":
		return got >= want
	default:
		return false
	}
}
