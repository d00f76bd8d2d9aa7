// spirv-llc translates a binary SPIR-V compute module to the textual
// form of the low-level IR and prints it to stdout.
//
// Usage:
//
//	spirv-llc [-bits 32|64] [-spec id=value,...] kernel.spv
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	spirvll "github.com/oneapi-go/spirv-ll"
	"github.com/oneapi-go/spirv-ll/device"
)

func main() {
	bits := flag.Uint("bits", 64, "device address width (32 or 64)")
	generic := flag.Bool("generic", false, "device supports the generic address space")
	specFlag := flag.String("spec", "", "specialization overrides as id=value[,id=value...]")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: spirv-llc [-bits 32|64] [-spec id=value,...] <file.spv>")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "spirv-llc: %v\n", err)
		os.Exit(1)
	}

	opts := spirvll.Options{
		Device: device.DeviceDescriptor{
			AddressBits:            uint32(*bits),
			HasGenericAddressSpace: *generic,
		},
	}
	if *specFlag != "" {
		spec, err := parseSpecOverrides(*specFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "spirv-llc: %v\n", err)
			os.Exit(1)
		}
		opts.SpecInfo = spec
	}

	result, err := spirvll.Translate(data, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spirv-llc: %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
	fmt.Print(result.Module.Dump())
}

func parseSpecOverrides(s string) (device.StaticSpecInfo, error) {
	out := device.StaticSpecInfo{}
	for _, pair := range strings.Split(s, ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad spec override %q (want id=value)", pair)
		}
		id, err := strconv.ParseUint(k, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("bad spec id %q: %v", k, err)
		}
		val, err := strconv.ParseUint(v, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("bad spec value %q: %v", v, err)
		}
		out[uint32(id)] = val
	}
	return out, nil
}
