package compiler

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/shellglob/shellglob/internal/codegen"
)

// runtimePackage is the import path of the runtime engine the
// generated tests compare against.
const runtimePackage = "github.com/shellglob/shellglob"

// generateTestFile writes a sibling _test.go file asserting that the
// generated matcher agrees with the runtime engine on every test
// input, plus a benchmark over the first input.
func (c *Compiler) generateTestFile() error {
	inputs := c.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{""}
	}

	f := jen.NewFile(c.config.Package)
	f.Comment(fmt.Sprintf("Code generated by globgen for pattern: %s", c.config.Pattern))
	f.Comment("DO NOT EDIT.")
	f.Line()

	inputValues := make([]jen.Code, 0, len(inputs))
	for _, input := range inputs {
		inputValues = append(inputValues, jen.Lit(input))
	}

	compileArgs := []jen.Code{jen.Lit(c.config.Pattern)}
	if c.config.Separator != 0 {
		compileArgs = append(compileArgs,
			jen.Qual(runtimePackage, "WithSeparator").Call(jen.LitRune(c.config.Separator)),
		)
	}

	f.Func().Id("Test" + c.config.Name + "MatchString").
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("want").Op(":=").Qual(runtimePackage, "MustCompile").Call(compileArgs...),
			jen.For(
				jen.List(jen.Id("_"), jen.Id(codegen.InputName)).Op(":=").
					Range().Index().String().Values(inputValues...),
			).Block(
				jen.Id("got").Op(":=").Id("Compiled"+c.config.Name).Dot("MatchString").Call(jen.Id(codegen.InputName)),
				jen.If(jen.Id("expected").Op(":=").Id("want").Dot("Matches").Call(jen.Id(codegen.InputName)), jen.Id("got").Op("!=").Id("expected")).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit("MatchString(%q) = %v, want %v"),
						jen.Id(codegen.InputName), jen.Id("got"), jen.Id("expected"),
					),
				),
			),
		)
	f.Line()

	f.Func().Id("Test" + c.config.Name + "MatchBytes").
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("want").Op(":=").Qual(runtimePackage, "MustCompile").Call(compileArgs...),
			jen.For(
				jen.List(jen.Id("_"), jen.Id(codegen.InputName)).Op(":=").
					Range().Index().String().Values(inputValues...),
			).Block(
				jen.Id("got").Op(":=").Id("Compiled"+c.config.Name).Dot("MatchBytes").Call(
					jen.Index().Byte().Parens(jen.Id(codegen.InputName)),
				),
				jen.If(jen.Id("expected").Op(":=").Id("want").Dot("Matches").Call(jen.Id(codegen.InputName)), jen.Id("got").Op("!=").Id("expected")).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit("MatchBytes(%q) = %v, want %v"),
						jen.Id(codegen.InputName), jen.Id("got"), jen.Id("expected"),
					),
				),
			),
		)
	f.Line()

	f.Func().Id("Benchmark" + c.config.Name + "MatchString").
		Params(jen.Id("b").Op("*").Qual("testing", "B")).
		Block(
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Id("b").Dot("N"), jen.Id("i").Op("++")).Block(
				jen.Id("Compiled"+c.config.Name).Dot("MatchString").Call(jen.Lit(inputs[0])),
			),
		)

	path := testFilePath(c.config.OutputFile)
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	return formatFile(path)
}

// testFilePath derives the _test.go sibling of the output file.
func testFilePath(path string) string {
	return strings.TrimSuffix(path, ".go") + "_test.go"
}
