package di_test

import (
	"testing"

	"github.com/sghaida/oofix/di"
)

func BenchmarkWithAll_TwoDependencies(b *testing.B) {
	injPrinter := di.Injecting(keyPrinter, di.Of(&printer{}), bindPrinter)
	injClock := di.Injecting(keyClock, di.Of(&clock{}), bindClock)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = newRunner().WithAll(injPrinter, injClock)
	}
}

func BenchmarkGetAs(b *testing.B) {
	svc := newRunner()
	_, _ = svc.With(di.Injecting(keyPrinter, di.Of(&printer{}), bindPrinter))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = di.GetAs[runner, printer](svc, keyPrinter)
	}
}

func BenchmarkRegistryResolve(b *testing.B) {
	r := di.NewRegistry[greeter]().Provide("en", english{})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("en")
	}
}
