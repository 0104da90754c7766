package schema

import (
	_ "embed"
	"sync"
)

// Draft04URI is the id of the draft 04 meta-schema.
const Draft04URI = "http://json-schema.org/draft-04/schema#"

//go:embed draft-04.json
var draft04JSON []byte

var (
	draft04Once      sync.Once
	draft04          interface{}
	draft04Validator *Validator
)

func loadDraft04() {
	v, err := Parse(draft04JSON)
	if err != nil {
		panic("schema: embedded draft 04 meta-schema is malformed: " + err.Error())
	}
	draft04 = v
}

// Draft04 returns the decoded draft 04 meta-schema. The value is shared
// by the whole process and must not be modified.
func Draft04() interface{} {
	draft04Once.Do(loadDraft04)
	return draft04
}

// Draft04JSON returns a copy of the meta-schema document text.
func Draft04JSON() []byte {
	return append([]byte(nil), draft04JSON...)
}

var metaValidatorOnce sync.Once

func metaValidator() *Validator {
	metaValidatorOnce.Do(func() {
		draft04Validator = NewValidator(Draft04(), WithBaseURI(Draft04URI))
	})
	return draft04Validator
}
