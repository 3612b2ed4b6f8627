package main

import (
	"bufio"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/Aurorachain/go-rlp/cmd/utils"
	"github.com/Aurorachain/go-rlp/common"
	"github.com/Aurorachain/go-rlp/common/math"
	"github.com/Aurorachain/go-rlp/rlp"
	"github.com/naoina/toml"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

var (
	dumpConfigCommand = cli.Command{
		Action:      utils.MigrateFlags(dumpConfig),
		Name:        "dumpconfig",
		Usage:       "Show configuration values",
		ArgsUsage:   "",
		Flags:       encodeFlags,
		Category:    "MISCELLANEOUS COMMANDS",
		Description: `The dumpconfig command shows configuration values.`,
	}

	configFileFlag = cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
)

var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// txConfig describes the transaction fields to encode. The integer fields
// accept decimal or 0x-prefixed hex and are encoded as 32 bit integers;
// the remaining fields are hex byte strings encoded verbatim. An empty
// byte string encodes as the RLP empty string.
type txConfig struct {
	Nonce    string
	GasPrice string
	GasLimit string
	To       string `toml:",omitempty"`
	Value    string `toml:",omitempty"`
	Data     string `toml:",omitempty"`
	V        string `toml:",omitempty"`
	R        string `toml:",omitempty"`
	S        string `toml:",omitempty"`
}

// defaultTxConfig mirrors the nine demo fields the tool encodes when no
// config file is given.
var defaultTxConfig = txConfig{
	Nonce:    "0",
	GasPrice: "1000000",
	GasLimit: "1000000000",
	To:       "0xe0defb92145fef3c3a945637705fafd3aa74a241",
	Value:    "0xde0b6b3a76400000",
	Data:     "0x00000000000000000000000000000000000000000001",
}

func loadConfig(file string, cfg *txConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)

	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

func makeConfig(ctx *cli.Context) txConfig {
	cfg := defaultTxConfig
	if file := ctx.GlobalString(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			utils.Fatalf("%v", err)
		}
	}
	return cfg
}

// elements converts the configured fields into the ordered element
// sequence of the transaction: nonce, gas price, gas limit, to, value,
// data, v, r, s.
func (c *txConfig) elements() ([]*rlp.Element, error) {
	nonce, err := uint32Field("nonce", c.Nonce)
	if err != nil {
		return nil, err
	}
	gasPrice, err := uint32Field("gasprice", c.GasPrice)
	if err != nil {
		return nil, err
	}
	gasLimit, err := uint32Field("gaslimit", c.GasLimit)
	if err != nil {
		return nil, err
	}
	to, err := addressField("to", c.To)
	if err != nil {
		return nil, err
	}
	value, err := bytesField("value", c.Value)
	if err != nil {
		return nil, err
	}
	data, err := bytesField("data", c.Data)
	if err != nil {
		return nil, err
	}
	v, err := bytesField("v", c.V)
	if err != nil {
		return nil, err
	}
	r, err := bytesField("r", c.R)
	if err != nil {
		return nil, err
	}
	s, err := bytesField("s", c.S)
	if err != nil {
		return nil, err
	}
	return []*rlp.Element{nonce, gasPrice, gasLimit, to, value, data, v, r, s}, nil
}

func uint32Field(name, s string) (*rlp.Element, error) {
	v, ok := math.ParseUint64(s)
	if !ok || v > math.MaxUint32 {
		return nil, errors.Errorf("%s %q is not a valid 32 bit integer", name, s)
	}
	return rlp.Uint32Element(uint32(v)), nil
}

func addressField(name, s string) (*rlp.Element, error) {
	if s == "" {
		return rlp.BytesElement(nil), nil
	}
	if !common.IsHexAddress(s) {
		return nil, errors.Errorf("%s %q is not a hex address", name, s)
	}
	addr := common.HexToAddress(s)
	return rlp.BytesElement(addr.Bytes()), nil
}

func bytesField(name, s string) (*rlp.Element, error) {
	if s == "" {
		return rlp.BytesElement(nil), nil
	}
	if !common.IsHex(s) {
		return nil, errors.Errorf("%s %q is not a hex byte string", name, s)
	}
	return rlp.BytesElement(common.FromHex(s)), nil
}

func dumpConfig(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}
	os.Stdout.Write(out)
	return nil
}
