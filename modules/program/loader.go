package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"CairoProgramHash/modules/fields"
)

// DefaultMainScope is the scope of the entry point when a program does not
// name one.
const DefaultMainScope = "__main__"

type identifierJSON struct {
	Type string          `json:"type"`
	PC   json.RawMessage `json:"pc"`
}

// programJSON covers both the full compiler output, where main is resolved
// through identifiers, and the stripped form carrying main directly.
type programJSON struct {
	Prime       string                    `json:"prime"`
	Data        []string                  `json:"data"`
	Builtins    []string                  `json:"builtins"`
	Main        json.RawMessage           `json:"main"`
	MainScope   string                    `json:"main_scope"`
	Identifiers map[string]identifierJSON `json:"identifiers"`
}

func parseRawElement(f fields.FieldEnum, raw json.RawMessage) (*big.Int, error) {
	text := strings.TrimSpace(string(raw))
	if unquoted := strings.Trim(text, `"`); len(unquoted) == len(text)-2 {
		text = unquoted
	}
	return fields.ParseElement(f, text)
}

func (pj *programJSON) resolveMain(f fields.FieldEnum) (*big.Int, error) {
	if len(pj.Main) != 0 && string(pj.Main) != "null" {
		main, err := parseRawElement(f, pj.Main)
		if err != nil {
			return nil, invalidWrap(err, "main")
		}
		return main, nil
	}

	scope := pj.MainScope
	if scope == "" {
		scope = DefaultMainScope
	}

	name := scope + ".main"
	ident, ok := pj.Identifiers[name]
	if !ok || len(ident.PC) == 0 {
		return nil, Invalidf(`neither "main" nor identifier "%s" with a pc`, name)
	}
	if ident.Type != "" && ident.Type != "function" && ident.Type != "label" {
		return nil, Invalidf(`identifier "%s" is a %s, not a function`, name, ident.Type)
	}

	main, err := parseRawElement(f, ident.PC)
	if err != nil {
		return nil, invalidWrap(err, "pc of %s", name)
	}
	return main, nil
}

// Decode reads a compiled program from JSON. Every element must be
// canonical in f and below the declared prime, if any.
func Decode(r io.Reader, f fields.FieldEnum) (*Program, error) {
	var pj programJSON
	if err := json.NewDecoder(r).Decode(&pj); err != nil {
		return nil, invalidWrap(err, "malformed program json")
	}
	return pj.toProgram(f)
}

func (pj *programJSON) toProgram(f fields.FieldEnum) (*Program, error) {
	var prime *big.Int
	if pj.Prime != "" {
		var ok bool
		if prime, ok = new(big.Int).SetString(strings.TrimPrefix(pj.Prime, "0x"), 16); !ok {
			return nil, Invalidf("malformed prime %s", pj.Prime)
		}
		// NOTE: a smaller prime embeds into f, e.g. stark programs under bn254
		if prime.Cmp(f.FieldModulus()) > 0 {
			return nil, Invalidf("program prime %s exceeds the %s field", pj.Prime, f)
		}
	}

	if pj.Data == nil {
		return nil, Invalidf(`missing "data"`)
	}

	main, err := pj.resolveMain(f)
	if err != nil {
		return nil, err
	}

	data := make([]*big.Int, len(pj.Data))
	for i, d := range pj.Data {
		if data[i], err = fields.ParseElement(f, d); err != nil {
			return nil, invalidWrap(err, "data[%d]", i)
		}
		if prime != nil && data[i].Cmp(prime) >= 0 {
			return nil, Invalidf("data[%d] is not reduced modulo the program prime", i)
		}
	}

	builtins := pj.Builtins
	if builtins == nil {
		builtins = []string{}
	}

	return &Program{Main: main, Builtins: builtins, Data: data}, nil
}

// FromJSON decodes a program embedded in another document.
func FromJSON(raw json.RawMessage, f fields.FieldEnum) (*Program, error) {
	if len(raw) == 0 {
		return nil, Invalidf("missing program")
	}
	return Decode(bytes.NewReader(raw), f)
}

// ReadProgramFile loads a compiled program file.
func ReadProgramFile(path string, f fields.FieldEnum) (*Program, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read program file: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}
