// spvinfo summarizes a binary SPIR-V compute module: header fields, the
// instruction count (and, with -dis, the opcode listing), and, when
// translation succeeds, each kernel entry point with its
// reqd_work_group_size and kernel argument metadata.
//
// Usage:
//
//	spvinfo [-dis] [-bits 32|64] kernel.spv
package main

import (
	"flag"
	"fmt"
	"os"

	spirvll "github.com/oneapi-go/spirv-ll"
	"github.com/oneapi-go/spirv-ll/device"
	"github.com/oneapi-go/spirv-ll/llir"
	"github.com/oneapi-go/spirv-ll/spirvbin"
)

func main() {
	dis := flag.Bool("dis", false, "also print one line per instruction")
	bits := flag.Uint("bits", 64, "device address width (32 or 64)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: spvinfo [-dis] [-bits 32|64] <file.spv>")
		os.Exit(1)
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvinfo: %v\n", err)
		os.Exit(1)
	}

	r, err := spirvbin.NewReader(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvinfo: %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
	fmt.Printf("; SPIR-V %s, generator 0x%08X, bound %d, schema %d\n",
		r.Header.Version, r.Header.Generator, r.Header.Bound, r.Header.Schema)

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvinfo: %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}
	fmt.Printf("; %d instructions\n", len(records))
	if *dis {
		for _, rec := range records {
			fmt.Printf("  %s", rec.Op)
			for _, w := range rec.Operands {
				fmt.Printf(" %d", w)
			}
			fmt.Println()
		}
	}

	opts := spirvll.Options{Device: device.DeviceDescriptor{AddressBits: uint32(*bits)}}
	result, err := spirvll.TranslateRecords(records, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "spvinfo: translation failed: %v\n", err)
		os.Exit(1)
	}

	for _, fn := range result.Module.Functions {
		if fn.Dead || fn.Conv != llir.CallSPIRKernel {
			continue
		}
		fmt.Printf("kernel %s:\n", fn.Name)
		if fn.HasWorkgroupSize {
			fmt.Printf("  reqd_work_group_size = [%d, %d, %d]\n",
				fn.WorkgroupSize[0], fn.WorkgroupSize[1], fn.WorkgroupSize[2])
		}
		for i, arg := range fn.KernelArgs {
			fmt.Printf("  arg %d: addrspace=%d access=%s type=%q base=%q qual=%q name=%q\n",
				i, arg.AddrSpace, arg.AccessQual, arg.TypeName, arg.BaseTypeName, arg.TypeQual, arg.ArgName)
		}
	}
}
