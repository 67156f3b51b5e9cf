package yamlstruct_test

import (
	ys "github.com/reoring/yamlstruct"
	"github.com/reoring/yamlstruct/dsl"
)

type accountType uint16

const (
	personal accountType = 1
	company  accountType = 2
)

var accountCodec = dsl.Enum(
	dsl.EnumValue("Personal", personal),
	dsl.EnumValue("Company", company),
)

type settings struct {
	Name    string
	Port    int
	Ratio   float64
	IPs     []string
	Alias   *string
	Account accountType
	Limits  map[string]int
	Pair    dsl.Pair[string, uint8]
	Levels  map[uint8]struct{}
}

func settingsFields() []dsl.FieldDef[settings] {
	return []dsl.FieldDef[settings]{
		dsl.Field("name", dsl.String(), func(s *settings) *string { return &s.Name }),
		dsl.Field("port", dsl.Int[int](), func(s *settings) *int { return &s.Port }),
		dsl.Field("ratio", dsl.Float[float64](), func(s *settings) *float64 { return &s.Ratio }),
		dsl.Field("ips", dsl.Array(dsl.String()), func(s *settings) *[]string { return &s.IPs }),
		dsl.Field("alias", dsl.Optional(dsl.String()), func(s *settings) **string { return &s.Alias }),
		dsl.Field("account", accountCodec, func(s *settings) *accountType { return &s.Account }),
		dsl.Field("limits", dsl.Map(dsl.String(), dsl.Int[int]()), func(s *settings) *map[string]int { return &s.Limits }),
		dsl.Field("pair", dsl.Tuple2(dsl.String(), dsl.Uint8()), func(s *settings) *dsl.Pair[string, uint8] { return &s.Pair }),
		dsl.Field("levels", dsl.Set(dsl.Uint8()), func(s *settings) *map[uint8]struct{} { return &s.Levels }),
	}
}

func settingsDefaults(s *settings) {
	s.Name = "default"
	s.Port = 8080
	s.Account = company
}

var settingsCodec = ys.MustRegister(dsl.ObjectOf[settings]().
	Defaults(settingsDefaults).
	Field(settingsFields()...).
	MustBind())

func strPtr(s string) *string { return &s }
