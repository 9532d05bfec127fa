package ast

import "toxc/internal/source"

// ParamSyn is one parsed function parameter.
type ParamSyn struct {
	Pat  PatID
	Ty   TypeID
	Span source.Span
}

// TypeParamSyn is one parsed generic parameter.
type TypeParamSyn struct {
	Name source.StringID
	Span source.Span
}

// FnItem is a parsed function declaration (top-level or a class method).
type FnItem struct {
	Name       source.StringID
	NameSpan   source.Span
	Exported   bool
	TypeParams []TypeParamID
	Params     []ParamID
	Returns    TypeID // NoTypeID when the return type is omitted
	Body       BlockID
	Span       source.Span
}

type Fns struct {
	Arena      *Arena[FnItem]
	Params     *Arena[ParamSyn]
	TypeParams *Arena[TypeParamSyn]
}

func NewFns(capHint uint) *Fns {
	return &Fns{
		Arena:      NewArena[FnItem](capHint),
		Params:     NewArena[ParamSyn](capHint),
		TypeParams: NewArena[TypeParamSyn](capHint),
	}
}

func (f *Fns) New(item FnItem) PayloadID {
	return PayloadID(f.Arena.Allocate(item))
}

func (f *Fns) Get(id PayloadID) *FnItem {
	return f.Arena.Get(uint32(id))
}

func (f *Fns) NewParam(p ParamSyn) ParamID {
	return ParamID(f.Params.Allocate(p))
}

func (f *Fns) GetParam(id ParamID) *ParamSyn {
	return f.Params.Get(uint32(id))
}

func (f *Fns) NewTypeParam(tp TypeParamSyn) TypeParamID {
	return TypeParamID(f.TypeParams.Allocate(tp))
}

func (f *Fns) GetTypeParam(id TypeParamID) *TypeParamSyn {
	return f.TypeParams.Get(uint32(id))
}
