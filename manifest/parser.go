// Copyright 2011 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package manifest

import (
	"os"

	"github.com/gobuildtools/ibuild"
)

// Parser drives a State's graph-building API from the token stream
// produced by a Lexer.
type Parser struct {
	state    *ibuild.State
	lex      *Lexer
	defaults []string
}

// Parse parses input (named filename for diagnostics) into state,
// returning the first error encountered. It is the entry point used by
// both the CLI and tests.
func Parse(state *ibuild.State, filename, input string) (*Parser, error) {
	p := &Parser{state: state, lex: NewLexer(filename, input)}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseFile reads path from disk and parses it into state.
func ParseFile(state *ibuild.State, path string) (*Parser, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(state, path, string(content))
}

// Defaults returns the paths named by any "default" statements, in
// declaration order.
func (p *Parser) Defaults() []string {
	return p.defaults
}

func (p *Parser) parse() error {
	for {
		switch tok := p.lex.ReadToken(); tok {
		case TEOF:
			return nil
		case NEWLINE:
			continue
		case RULE:
			if err := p.parseRule(); err != nil {
				return err
			}
		case BUILD:
			if err := p.parseBuild(); err != nil {
				return err
			}
		case DEFAULT:
			if err := p.parseDefault(); err != nil {
				return err
			}
		case IDENT:
			if err := p.parseTopLevelBinding(); err != nil {
				return err
			}
		default:
			return p.lex.Error("unexpected " + tok.String())
		}
	}
}

func (p *Parser) expect(want Token) error {
	if got := p.lex.ReadToken(); got != want {
		return p.lex.Error("expected " + want.String() + ", got " + got.String())
	}
	return nil
}

func (p *Parser) parseTopLevelBinding() error {
	name := p.lex.ReadIdent()
	if err := p.expect(EQUALS); err != nil {
		return err
	}
	raw := p.lex.ReadVarValue()
	var ev ibuild.EvalString
	if err := ev.Parse(raw); err != nil {
		return &ibuild.ParseError{Context: "binding " + name, Err: err}
	}
	value := ev.Evaluate(p.state)

	// ibuild_required_version is checked as soon as it is seen, before any
	// later statement can surprise the caller with an incompatible manifest.
	if name == "ibuild_required_version" {
		if err := ibuild.CheckRequiredVersion(value); err != nil {
			return err
		}
	}

	p.state.AddBinding(name, value)
	return p.expectLineEnd()
}

func (p *Parser) parseRule() error {
	if err := p.expect(IDENT); err != nil {
		return p.lex.Error("expected rule name")
	}
	name := p.lex.ReadIdent()
	if err := p.expectLineEnd(); err != nil {
		return err
	}

	bindings, err := p.parseBindingsBlock()
	if err != nil {
		return err
	}
	command, ok := bindings["command"]
	if !ok {
		return p.lex.Error("rule " + name + " has no command binding")
	}
	rule, err := ibuild.NewRule(name, command)
	if err != nil {
		return err
	}
	if desc, ok := bindings["description"]; ok {
		if err := rule.SetDescription(desc); err != nil {
			return err
		}
	}
	return p.state.AddRule(rule)
}

func (p *Parser) parseBuild() error {
	outputs, stop, err := p.readPaths()
	if err != nil {
		return err
	}
	if len(outputs) == 0 {
		return p.lex.Error("build statement has no outputs")
	}
	if stop != COLON {
		return p.lex.Error("expected ':' after build outputs, got " + stop.String())
	}

	ruleTok := p.lex.ReadToken()
	if ruleTok != IDENT && ruleTok != BUILD && ruleTok != RULE && ruleTok != DEFAULT {
		return p.lex.Error("expected rule name after ':'")
	}
	ruleName := p.lex.ReadIdent()
	rule := p.state.LookupRule(ruleName)
	if rule == nil {
		return p.lex.Error("unknown rule '" + ruleName + "'")
	}

	inputs, stop, err := p.readPaths()
	if err != nil {
		return err
	}
	var implicit, orderOnly []string
	if stop == PIPE {
		implicit, stop, err = p.readPaths()
		if err != nil {
			return err
		}
	}
	if stop == PIPE2 {
		orderOnly, stop, err = p.readPaths()
		if err != nil {
			return err
		}
	}
	if stop != NEWLINE && stop != TEOF {
		return p.lex.Error("expected newline after build statement, got " + stop.String())
	}

	bindings, err := p.parseBindingsBlock()
	if err != nil {
		return err
	}

	edge := p.state.AddEdge(rule)
	for _, path := range outputs {
		if err := p.state.AddInOut(edge, ibuild.EdgeOut, p.state.GetNode(path)); err != nil {
			return err
		}
	}
	for _, path := range inputs {
		if err := p.state.AddInOut(edge, ibuild.EdgeIn, p.state.GetNode(path)); err != nil {
			return err
		}
	}
	for _, path := range implicit {
		if err := p.state.AddInOut(edge, ibuild.EdgeIn, p.state.GetNode(path)); err != nil {
			return err
		}
	}
	for _, path := range orderOnly {
		if err := p.state.AddInOut(edge, ibuild.EdgeOrderOnlyIn, p.state.GetNode(path)); err != nil {
			return err
		}
	}
	for name, raw := range bindings {
		var ev ibuild.EvalString
		if err := ev.Parse(raw); err != nil {
			return &ibuild.ParseError{Context: "build binding " + name, Err: err}
		}
		edge.SetBinding(name, ev.Evaluate(p.state))
	}
	return nil
}

func (p *Parser) parseDefault() error {
	paths, stop, err := p.readPaths()
	if err != nil {
		return err
	}
	if stop != NEWLINE && stop != TEOF {
		return p.lex.Error("expected newline after default statement, got " + stop.String())
	}
	p.defaults = append(p.defaults, paths...)
	return nil
}

// readPaths reads IDENT tokens as bare paths until a non-IDENT token is
// encountered, returning the paths and the terminating token (already
// consumed).
func (p *Parser) readPaths() ([]string, Token, error) {
	var paths []string
	for {
		tok := p.lex.ReadToken()
		if tok != IDENT {
			return paths, tok, nil
		}
		paths = append(paths, p.lex.ReadIdent())
	}
}

// parseBindingsBlock reads zero or more INDENT-prefixed "name = value"
// lines, stopping (and pushing the lookahead token back) at the first
// line that is not indented.
func (p *Parser) parseBindingsBlock() (map[string]string, error) {
	bindings := make(map[string]string)
	for {
		tok := p.lex.ReadToken()
		if tok != INDENT {
			p.lex.UnreadToken()
			return bindings, nil
		}
		nameTok := p.lex.ReadToken()
		if nameTok != IDENT {
			return nil, p.lex.Error("expected variable name, got " + nameTok.String())
		}
		name := p.lex.ReadIdent()
		if err := p.expect(EQUALS); err != nil {
			return nil, err
		}
		bindings[name] = p.lex.ReadVarValue()
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) expectLineEnd() error {
	if tok := p.lex.ReadToken(); tok != NEWLINE && tok != TEOF {
		return p.lex.Error("expected newline, got " + tok.String())
	}
	return nil
}
