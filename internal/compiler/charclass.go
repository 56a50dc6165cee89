package compiler

import "github.com/dave/jennifer/jen"

// memberCondition builds the membership expression for a character
// class over the decoded rune r: equality per single character,
// an inclusive bounds pair per range, OR-joined.
func memberCondition(ranges []rangeTerm) *jen.Statement {
	var cond *jen.Statement
	for _, rg := range ranges {
		var term *jen.Statement
		if rg.Lo == rg.Hi {
			term = jen.Id("r").Op("==").LitRune(rg.Lo)
		} else {
			term = jen.Parens(
				jen.LitRune(rg.Lo).Op("<=").Id("r").Op("&&").Id("r").Op("<=").LitRune(rg.Hi),
			)
		}
		if cond == nil {
			cond = term
		} else {
			cond = cond.Op("||").Add(term)
		}
	}
	return cond
}

// classFailCondition returns the condition for FAILURE (i.e., the rune
// is rejected by the class). Negation wraps the same membership
// expression rather than generating a second code path.
func classFailCondition(ranges []rangeTerm, negated bool) *jen.Statement {
	member := memberCondition(ranges)
	if negated {
		return jen.Parens(member)
	}
	return jen.Op("!").Parens(member)
}
