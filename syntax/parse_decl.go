package syntax

import (
	"hcc/progs"
	"hcc/typing"
	"math"
	"strconv"
	"strings"
)

// file = {decl} ;
func (p *Parser) parseFile() error {
	for !p.got(TOK_EOF) {
		if err := p.parseDecl(); err != nil {
			return err
		}
	}

	return nil
}

// decl = type_spec def {',' def} ';' ;
func (p *Parser) parseDecl() error {
	if p.got(TOK_IDENT) && p.tok.Value == "local" {
		return p.errorf("local declarations are only allowed inside functions")
	}

	t, err := p.parseTypeSpec()
	if err != nil {
		return err
	}

	for {
		if err := p.parseDef(t); err != nil {
			return err
		}

		if !p.got(TOK_COMMA) {
			break
		}

		if err := p.next(); err != nil {
			return err
		}
	}

	return p.assertAndNext(TOK_SEMI)
}

// basicTypes maps type keywords to their types.
var basicTypes = map[string]*typing.Type{
	"void":   typing.Void,
	"string": typing.String,
	"float":  typing.Float,
	"vector": typing.Vector,
	"entity": typing.Entity,
}

// type_spec = ['.'] basic_type ['(' params ')'] ;
func (p *Parser) parseTypeSpec() (*typing.Type, error) {
	isField := p.got(TOK_DOT)
	if isField {
		if err := p.next(); err != nil {
			return nil, err
		}
	}

	if err := p.assert(TOK_IDENT); err != nil {
		return nil, err
	}

	t, ok := basicTypes[p.tok.Value]
	if !ok {
		return nil, p.errorf("unknown type `%s`", p.tok.Value)
	}

	if err := p.next(); err != nil {
		return nil, err
	}

	if p.got(TOK_LPAREN) {
		ft, err := p.parseParams(t)
		if err != nil {
			return nil, err
		}
		t = ft
	}

	if isField {
		t = p.u.Types().FieldOf(t)
	}

	return t, nil
}

// params = '(' [param {',' param} [',' '...'] | '...'] ')' ;
// param = type_spec IDENT ;
func (p *Parser) parseParams(ret *typing.Type) (*typing.Type, error) {
	ft := &typing.Type{Kind: typing.KindFunction, Aux: ret}

	if err := p.next(); err != nil {
		return nil, err
	}

	for !p.got(TOK_RPAREN) {
		if len(ft.Params) > 0 {
			if err := p.assertAndNext(TOK_COMMA); err != nil {
				return nil, err
			}
		}

		if p.got(TOK_ELLIPSIS) {
			ft.Varargs = true
			if err := p.next(); err != nil {
				return nil, err
			}

			break
		}

		pt, err := p.parseTypeSpec()
		if err != nil {
			return nil, err
		}

		// `void()` declares no parameters
		if pt == typing.Void && len(ft.Params) == 0 && p.got(TOK_RPAREN) {
			break
		}

		if err := p.assertAndNext(TOK_IDENT); err != nil {
			return nil, err
		}

		ft.Params = append(ft.Params, pt)
		if len(ft.Params) > progs.MaxParms {
			return nil, p.errorf("function has more than %d parameters", progs.MaxParms)
		}
	}

	if err := p.assertAndNext(TOK_RPAREN); err != nil {
		return nil, err
	}

	return p.u.Types().Find(ft), nil
}

// def = IDENT ['=' initializer] ;
func (p *Parser) parseDef(t *typing.Type) error {
	if err := p.assert(TOK_IDENT); err != nil {
		return err
	}

	name := p.tok.Value
	if _, ok := basicTypes[name]; ok || name == "local" {
		return p.errorf("`%s` is a reserved word", name)
	}

	id, err := p.u.Declare(name, t, progs.NoScope)
	if err != nil {
		return p.fail(err)
	}

	sym := p.u.Symbol(id)
	if !sym.Type.Equals(t) {
		return p.errorf("type mismatch on redeclaration of `%s`: %s and %s", name, sym.Type.Repr(), t.Repr())
	}

	if err := p.next(); err != nil {
		return err
	}

	if !p.got(TOK_ASSIGN) {
		return nil
	}

	if sym.Initialized {
		return p.errorf("`%s` redeclared", name)
	}

	if err := p.next(); err != nil {
		return err
	}

	switch t.Kind {
	case typing.KindFunction:
		return p.parseFuncInit(id)
	case typing.KindField:
		return p.errorf("fields cannot be initialized")
	default:
		return p.parseConstInit(id)
	}
}

// func_init = '#' NUMBER ;
func (p *Parser) parseFuncInit(id progs.SymbolID) error {
	switch p.tok.Kind {
	case TOK_HASH:
	case TOK_LBRACE, TOK_LBRACKET:
		return p.errorf("function bodies require the statement compiler")
	default:
		return p.reject(TOK_HASH)
	}

	if err := p.next(); err != nil {
		return err
	}

	if err := p.assert(TOK_NUMBER); err != nil {
		return err
	}

	n, err := strconv.Atoi(p.tok.Value)
	if err != nil || n <= 0 {
		return p.errorf("bad builtin number `%s`", p.tok.Value)
	}

	t := p.u.Symbol(id).Type
	f := progs.Function{FirstStatement: int32(-n), NumParms: int32(len(t.Params))}
	if t.Varargs {
		f.NumParms = -1 - f.NumParms
	}

	for i, pt := range t.Params {
		f.ParmSize[i] = byte(typing.Size(pt.Kind))
	}

	if _, err := p.u.DefineFunction(id, f); err != nil {
		return p.fail(err)
	}

	return p.next()
}

// const_init = ['-'] NUMBER | STRING {STRING} | VECTOR ;
func (p *Parser) parseConstInit(id progs.SymbolID) error {
	sym := p.u.Symbol(id)
	ofs := sym.Ofs

	switch sym.Type.Kind {
	case typing.KindFloat:
		f, err := p.parseFloat()
		if err != nil {
			return err
		}

		if err := p.u.SetGlobalFloat(ofs, f); err != nil {
			return p.fail(err)
		}
	case typing.KindString:
		if err := p.assert(TOK_STRING); err != nil {
			return err
		}

		// adjacent literals are concatenated
		sb := strings.Builder{}
		for p.got(TOK_STRING) {
			sb.WriteString(p.tok.Value)
			if err := p.next(); err != nil {
				return err
			}
		}

		if err := p.u.SetGlobalString(ofs, sb.String()); err != nil {
			return p.fail(err)
		}
	case typing.KindVector:
		if err := p.assert(TOK_VECTOR); err != nil {
			return err
		}

		v, err := p.parseVector(p.tok.Value)
		if err != nil {
			return err
		}

		for i, f := range v {
			if err := p.u.SetGlobalFloat(ofs+i, f); err != nil {
				return p.fail(err)
			}

			p.u.MarkInitialized(id + progs.SymbolID(i+1))
		}

		if err := p.next(); err != nil {
			return err
		}
	default:
		return p.errorf("cannot initialize a constant of type %s", sym.Type.Repr())
	}

	p.u.MarkInitialized(id)
	return nil
}

// parseFloat parses an optionally negated number.
func (p *Parser) parseFloat() (float32, error) {
	neg := p.got(TOK_MINUS)
	if neg {
		if err := p.next(); err != nil {
			return 0, err
		}
	}

	if err := p.assert(TOK_NUMBER); err != nil {
		return 0, err
	}

	f, err := parseNumber(p.tok.Value)
	if err != nil {
		return 0, p.errorf("bad number `%s`", p.tok.Value)
	}

	if neg {
		f = -f
	}

	return f, p.next()
}

// parseVector parses the text of a vector literal: three numbers separated by
// whitespace.
func (p *Parser) parseVector(text string) ([3]float32, error) {
	var v [3]float32

	fields := strings.Fields(text)
	if len(fields) != 3 {
		return v, p.errorf("vector literal '%s' must have three components", text)
	}

	for i, field := range fields {
		f, err := parseNumber(field)
		if err != nil {
			return v, p.errorf("bad vector component `%s`", field)
		}
		v[i] = f
	}

	return v, nil
}

// parseNumber converts number text into a float that is representable in
// storage.
func parseNumber(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, err
	}

	if math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}

	return float32(f), nil
}
