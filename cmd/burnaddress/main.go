// Command burnaddress derives a provably unspendable base58Check address from
// a template.
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ModChain/burnaddr"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage")

const usage = `usage: burnaddress [-v] TEMPLATE

   TEMPLATE - 34 letters & numbers (no zeros)
              the first two are coin specific
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)

	cfg, parser, err := parseConfig(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(stdout)
			return 0
		}
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
		}
		fmt.Fprint(stderr, usage)
		return 1
	}
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	raw := cfg.template()
	if raw == "test" {
		raw = burnaddr.TestTemplate
	}

	template, err := burnaddr.NormalizeTemplate(raw)
	if err != nil {
		log.WithField("template", raw).Error(err)
		return 1
	}
	if template != raw {
		log.WithFields(logrus.Fields{"from": raw, "to": template}).Debug("normalized template")
	}

	addr, err := burnaddr.Burn(template)
	if err != nil {
		log.WithField("template", template).Error(err)
		return 1
	}

	if err := burnaddr.Verify(addr); err != nil {
		log.WithField("address", addr).Error(err)
		return 1
	}

	if cfg.Verbose {
		buf, err := burnaddr.Decode(addr)
		if err == nil {
			payload := buf[:len(buf)-burnaddr.ChecksumLength]
			log.WithFields(logrus.Fields{
				"payload":  hex.EncodeToString(payload),
				"checksum": hex.EncodeToString(buf[len(payload):]),
			}).Debug("burned")
		}
	}

	fmt.Fprintln(stdout, addr)
	return 0
}
