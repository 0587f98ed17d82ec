// Package catalog holds the metric table functions Sazgar exposes. Every
// function follows the same shape: a static column schema, named optional
// arguments resolved at bind time, and a cursor that acquires its snapshot
// at init and materializes rows one at a time.
package catalog

import (
	"github.com/Angelerator/Sazgar/pkg/sysprobe"
	"github.com/Angelerator/Sazgar/pkg/table"
)

// RegisterAll registers every table function against reg, all backed by the
// same snapshot provider. Each registry lookup yields an independent
// function value, so re-entrant and concurrent invocations share nothing
// but the provider.
func RegisterAll(reg *table.Registry, p sysprobe.Provider, version string) error {
	builders := []func() table.Function{
		func() table.Function { return &cpuFunc{provider: p} },
		func() table.Function { return &cpuCoresFunc{provider: p} },
		func() table.Function { return &memoryFunc{provider: p} },
		func() table.Function { return &swapFunc{provider: p} },
		func() table.Function { return &osFunc{provider: p} },
		func() table.Function { return &systemFunc{provider: p} },
		func() table.Function { return &disksFunc{provider: p} },
		func() table.Function { return &networkFunc{provider: p} },
		func() table.Function { return &processesFunc{provider: p} },
		func() table.Function { return &fdsFunc{provider: p} },
		func() table.Function { return &loadFunc{provider: p} },
		func() table.Function { return &usersFunc{provider: p} },
		func() table.Function { return &componentsFunc{provider: p} },
		func() table.Function { return &environmentFunc{provider: p} },
		func() table.Function { return &uptimeFunc{provider: p} },
		func() table.Function { return &portsFunc{provider: p} },
		func() table.Function { return &gpuFunc{provider: p} },
		func() table.Function { return &dockerFunc{provider: p} },
		func() table.Function { return &servicesFunc{provider: p} },
		func() table.Function { return &versionFunc{version: version} },
	}
	for _, b := range builders {
		if err := reg.Register(b); err != nil {
			return err
		}
	}
	return nil
}

// percent32 computes part/total as a percentage, zero when total is zero.
func percent32(part, total uint64) float32 {
	if total == 0 {
		return 0
	}
	return float32(part) / float32(total) * 100
}

func percent64(part, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
