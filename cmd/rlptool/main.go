package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/Aurorachain/go-rlp/cmd/utils"
	"github.com/Aurorachain/go-rlp/common"
	"github.com/Aurorachain/go-rlp/common/mclock"
	"github.com/Aurorachain/go-rlp/log"
	"github.com/Aurorachain/go-rlp/rlp"
	"golang.org/x/crypto/sha3"
	"gopkg.in/urfave/cli.v1"
)

const (
	// clientName is the display name used in the version banner.
	clientName = "Rlptool"
)

var (
	gitCommit = ""

	app = utils.NewApp(gitCommit, "the go-rlp command line interface")

	hashFlag = cli.BoolFlag{
		Name:  "hash",
		Usage: "Print the Keccak-256 digest of the encoding",
	}

	encodeFlags = []cli.Flag{
		configFileFlag,
		hashFlag,
		utils.VerbosityFlag,
	}
)

func init() {
	app.Action = encode
	app.HideVersion = true
	app.Copyright = "Copyright 2020 The go-rlp Authors"
	app.Commands = []cli.Command{
		dumpConfigCommand,
		licenseCommand,
		versionCommand,
	}
	sort.Sort(cli.CommandsByName(app.Commands))

	app.Flags = append(app.Flags, encodeFlags...)

	app.Before = func(ctx *cli.Context) error {
		runtime.GOMAXPROCS(runtime.NumCPU())
		log.SetLevel(ctx.GlobalString(utils.VerbosityFlag.Name))
		return nil
	}
}

func main() {

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// encode builds the configured transaction fields, encodes them as a
// single RLP list and prints the hex encoding on stdout.
func encode(ctx *cli.Context) error {
	cfg := makeConfig(ctx)
	elems, err := cfg.elements()
	if err != nil {
		utils.Fatalf("Invalid transaction config: %v", err)
	}
	size, err := rlp.ListSize(elems)
	if err != nil {
		utils.Fatalf("Invalid transaction config: %v", err)
	}

	buf := make([]byte, size)
	start := mclock.Now()
	n, err := rlp.EncodeList(buf, elems)
	if err != nil {
		utils.Fatalf("Encoding failed: %v", err)
	}
	elapsed := common.PrettyDuration(mclock.Elapsed(start))
	log.Debugf("Encoded %d elements, %d bytes in %v", len(elems), n, elapsed)

	fmt.Println(common.ToHex(buf[:n]))
	if ctx.GlobalBool(hashFlag.Name) {
		h := rlpHash(buf[:n])
		log.Debugf("Transaction digest %s", h.TerminalString())
		fmt.Println(h.Hex())
	}
	return nil
}

func rlpHash(enc []byte) (h common.Hash) {
	hw := sha3.NewLegacyKeccak256()
	hw.Write(enc)
	hw.Sum(h[:0])
	return h
}
