package store

import (
	"encoding/json"
	"errors"
	"math"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/mipsim/asm"
)

// Format is a persisted program encoding.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_JSON = Format(0) // json
	FORMAT_YAML = Format(1) // yaml
)

// ParseFormat returns the format with the given name.
func ParseFormat(name string) (format Format, err error) {
	switch strings.ToLower(name) {
	case "json":
		format = FORMAT_JSON
	case "yaml", "yml":
		format = FORMAT_YAML
	default:
		err = ErrFormatInvalid
	}
	return
}

// FormatOf chooses a format by file extension; YAML for .yaml and .yml,
// JSON otherwise.
func FormatOf(name string) Format {
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		return FORMAT_YAML
	}
	return FORMAT_JSON
}

// The persisted layout. Key names are part of the format.
type wireProgram struct {
	SyntaxTree  []wireStatement `json:"SyntaxTree" yaml:"SyntaxTree"`
	SymbolTable []wireSymbol    `json:"SymbolTable" yaml:"SymbolTable"`
}

type wireStatement struct {
	Index int      `json:"index" yaml:"index"`
	Item  wireItem `json:"item" yaml:"item"`
}

type wireItem struct {
	Mnemonic     string   `json:"mnemonic,omitempty" yaml:"mnemonic,omitempty"`
	Action       string   `json:"action" yaml:"action"`
	Type         string   `json:"type" yaml:"type"`
	Arguments    int      `json:"arguments" yaml:"arguments"`
	Argument     []string `json:"argument" yaml:"argument"`
	ArgumentType []string `json:"argumentType" yaml:"argumentType"`
}

type wireSymbol struct {
	Type     string `json:"type" yaml:"type"`
	Value    any    `json:"value" yaml:"value"`
	Name     string `json:"name" yaml:"name"`
	ReadOnly bool   `json:"readOnly,omitempty" yaml:"readOnly,omitempty"`
}

type wirePayload struct {
	Encoding string `json:"encoding" yaml:"encoding"`
	Data     string `json:"data" yaml:"data"`
}

// toWire converts a program to its persisted layout.
func toWire(prog *asm.Program) (wp *wireProgram) {
	wp = &wireProgram{
		SyntaxTree:  []wireStatement{},
		SymbolTable: []wireSymbol{},
	}

	for _, insn := range prog.Instructions {
		roles := make([]string, len(insn.Roles))
		for n, role := range insn.Roles {
			roles[n] = role.String()
		}
		wp.SyntaxTree = append(wp.SyntaxTree, wireStatement{
			Index: insn.LineNo,
			Item: wireItem{
				Mnemonic:     insn.Mnemonic,
				Action:       insn.Action.String(),
				Type:         insn.Kind.String(),
				Arguments:    insn.Arity,
				Argument:     insn.Operands,
				ArgumentType: roles,
			},
		})
	}

	for _, sym := range prog.Symbols.All() {
		ws := wireSymbol{
			Type:     sym.Segment.String(),
			Name:     sym.Name,
			ReadOnly: sym.ReadOnly,
		}
		if sym.Payload != nil {
			ws.Value = wirePayload{Encoding: sym.Payload.Encoding, Data: sym.Payload.Data}
		} else {
			ws.Value = sym.Address
		}
		wp.SymbolTable = append(wp.SymbolTable, ws)
	}

	return
}

// fromWire validates a persisted layout and converts it to a program.
func fromWire(wp *wireProgram) (prog *asm.Program, err error) {
	defer func() {
		if err != nil {
			prog = nil
		}
	}()

	prog = &asm.Program{}

	for _, ws := range wp.SyntaxTree {
		item := ws.Item
		insn := asm.Instruction{
			LineNo:   ws.Index,
			Mnemonic: item.Mnemonic,
			Arity:    item.Arguments,
			Operands: item.Argument,
		}

		var ok bool
		insn.Action, ok = asm.ParseAction(item.Action)
		if !ok {
			err = errors.Join(ErrProgramInvalid, errors.New(f("line %d: action '%v'", ws.Index, item.Action)))
			return
		}

		insn.Kind, ok = asm.ParseKind(item.Type)
		if !ok {
			err = errors.Join(ErrProgramInvalid, errors.New(f("line %d: type '%v'", ws.Index, item.Type)))
			return
		}

		for _, name := range item.ArgumentType {
			var role asm.Role
			role, ok = asm.ParseRole(name)
			if !ok {
				err = errors.Join(ErrProgramInvalid, errors.New(f("line %d: argument type '%v'", ws.Index, name)))
				return
			}
			insn.Roles = append(insn.Roles, role)
		}

		if len(insn.Roles) != len(insn.Operands) || insn.Arity < 0 || insn.Arity > len(insn.Operands) {
			err = errors.Join(ErrProgramInvalid, errors.New(f("line %d: argument count", ws.Index)))
			return
		}

		err = checkDescriptor(&insn)
		if err != nil {
			err = errors.Join(ErrProgramInvalid, errors.New(f("line %d: %v", ws.Index, err)))
			return
		}

		if len(insn.Mnemonic) == 0 {
			insn.Mnemonic = strings.ToLower(item.Action)
		}

		prog.Instructions = append(prog.Instructions, insn)
	}

	for _, ws := range wp.SymbolTable {
		sym := asm.Symbol{
			Name:     ws.Name,
			ReadOnly: ws.ReadOnly,
		}

		var ok bool
		sym.Segment, ok = asm.ParseSegment(ws.Type)
		if !ok || sym.Segment == asm.SEGMENT_NONE {
			err = errors.Join(ErrProgramInvalid, errors.New(f("symbol %v: type '%v'", ws.Name, ws.Type)))
			return
		}

		switch value := ws.Value.(type) {
		case float64:
			if value != math.Trunc(value) {
				ok = false
				break
			}
			sym.Address = int(value)
		case int:
			sym.Address = value
		case map[string]any:
			payload := &asm.Payload{}
			payload.Encoding, _ = value["encoding"].(string)
			payload.Data, ok = value["data"].(string)
			if len(payload.Encoding) == 0 {
				payload.Encoding = asm.DefaultEncoding
			}
			sym.Payload = payload
		default:
			ok = false
		}

		if !ok || (sym.Segment == asm.SEGMENT_DATA) != (sym.Payload != nil) {
			err = errors.Join(ErrProgramInvalid, errors.New(f("symbol %v: value", ws.Name)))
			return
		}

		prog.Symbols.Define(sym)
	}

	return
}

// checkDescriptor verifies an instruction against the catalog entry for its
// mnemonic, or for its action and kind when it has none.
func checkDescriptor(insn *asm.Instruction) (err error) {
	var desc asm.Descriptor
	var ok bool
	if len(insn.Mnemonic) != 0 {
		desc, ok = asm.Lookup(insn.Mnemonic)
		ok = ok && desc.Action == insn.Action && desc.Kind == insn.Kind
	} else {
		_, desc, ok = asm.LookupKind(insn.Action, insn.Kind, insn.Arity)
	}
	if !ok {
		err = asm.ErrInstructionInvalid
		return
	}

	if insn.Arity != desc.Arity || len(insn.Operands) != desc.Arity+len(desc.Implied) {
		err = &asm.ErrOperandCount{Mnemonic: insn.Mnemonic, Want: desc.Arity, Got: insn.Arity}
		return
	}

	for n, role := range desc.Roles {
		if insn.Roles[n] != role || !asm.Classify(insn.Operands[n], role) {
			err = &asm.ErrOperandRole{Mnemonic: insn.Mnemonic, Role: role, Token: insn.Operands[n]}
			return
		}
	}

	return
}

// Marshal encodes a program.
func Marshal(prog *asm.Program, format Format) (data []byte, err error) {
	wp := toWire(prog)

	switch format {
	case FORMAT_JSON:
		data, err = json.MarshalIndent(wp, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FORMAT_YAML:
		data, err = yaml.Marshal(wp)
	default:
		err = ErrFormatInvalid
	}

	return
}

// Unmarshal decodes a program.
func Unmarshal(data []byte, format Format) (prog *asm.Program, err error) {
	wp := &wireProgram{}

	switch format {
	case FORMAT_JSON:
		err = json.Unmarshal(data, wp)
	case FORMAT_YAML:
		err = yaml.Unmarshal(data, wp)
	default:
		err = ErrFormatInvalid
	}
	if err != nil {
		err = errors.Join(ErrProgramInvalid, err)
		return
	}

	return fromWire(wp)
}
