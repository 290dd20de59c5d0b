//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func level() string {
	// ASIMD (NEON) is part of the ARMv8-A baseline.
	switch {
	case cpu.ARM64.HasSVE2:
		return "sve2"
	case cpu.ARM64.HasSVE:
		return "sve"
	case cpu.ARM64.HasASIMD:
		return "neon"
	default:
		return "scalar"
	}
}

func features() []Feature {
	return []Feature{
		{"asimd", cpu.ARM64.HasASIMD},
		{"fp", cpu.ARM64.HasFP},
		{"fphp", cpu.ARM64.HasFPHP},
		{"asimdhp", cpu.ARM64.HasASIMDHP},
		{"asimddp", cpu.ARM64.HasASIMDDP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
		{"atomics", cpu.ARM64.HasATOMICS},
	}
}
