//go:build !amd64 && !arm64

package cpuinfo

func level() string {
	return "scalar"
}

func features() []Feature {
	return nil
}
