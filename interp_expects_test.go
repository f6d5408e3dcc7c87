package main

// @generated from interp_test.go

//go:generate go run scripts/gen_interp_expects.go -- interp_test.go interp_expects_test.go

import "time"

func withInterpOptions(opts ...InterpOption) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withOptions(opts...)
	}
}

func withInterpStack(values ...interface{}) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withStack(values...)
	}
}

func withInterpStackLimit(limit int) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withStackLimit(limit)
	}
}

func withInterpInput(input string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withInput(input)
	}
}

func withInterpNamedInput(name string, input string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withNamedInput(name, input)
	}
}

func withInterpTimeout(timeout time.Duration) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.withTimeout(timeout)
	}
}

func expectInterpError(err error) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectError(err)
	}
}

func expectInterpStack(values ...interface{}) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectStack(values...)
	}
}

func expectInterpOutput(output string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectOutput(output)
	}
}

func expectInterpDefined(name string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectDefined(name)
	}
}

func expectInterpUndefined(name string) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectUndefined(name)
	}
}

func expectInterpExited(exited bool) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectExited(exited)
	}
}

func expectInterpFailures(failures int) func(interpTestCase) interpTestCase {
	return func(itc interpTestCase) interpTestCase {
		return itc.expectFailures(failures)
	}
}
