package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LandaMm/PL-interpreter/internal/builtins"
	"github.com/LandaMm/PL-interpreter/internal/lexer"
	"github.com/LandaMm/PL-interpreter/internal/parser"
	"github.com/LandaMm/PL-interpreter/internal/runtime"
)

// run parses and evaluates src against a fresh store + bootstrapped root
// environment, returning the program's value and whatever print() wrote.
func run(t *testing.T, src string) (runtime.Value, string) {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	store, root := runtime.NewStore()
	var out bytes.Buffer
	if err := builtins.Bootstrap(store, root, &out); err != nil {
		t.Fatalf("bootstrap error: %v", err)
	}
	v, err := New(store).RunProgram(prog, root)
	if err != nil {
		t.Fatalf("eval error: %v", err)
	}
	return v, out.String()
}

func runErr(t *testing.T, src string) error {
	t.Helper()
	prog, err := parser.New(lexer.New(src)).ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	store, root := runtime.NewStore()
	var out bytes.Buffer
	if err := builtins.Bootstrap(store, root, &out); err != nil {
		t.Fatalf("bootstrap error: %v", err)
	}
	_, err = New(store).RunProgram(prog, root)
	return err
}

// Scenario A: closures capture their declaration environment — each call to
// make_adder gets its own `n` binding, and the two resulting closures stay
// independent even though both are alive and callable from the calling
// scope at the same time.
func TestClosureCapturesDeclarationScope(t *testing.T) {
	src := `
fn make_adder(n) {
    fn adder(x) {
        return x + n;
    }
    return adder;
}
let add5 = make_adder(5);
let add10 = make_adder(10);
add5(1) + add10(1);
`
	v, _ := run(t, src)
	got, ok := v.(runtime.Integer)
	if !ok || got != 17 {
		t.Fatalf("expected Integer(17), got %v", v)
	}
}

// Scenario B: a constant may not be reassigned.
func TestConstantReassignmentFails(t *testing.T) {
	err := runErr(t, `
const x = 1;
x = 2;
`)
	if !runtime.IsKind(err, runtime.ReassignConstant) {
		t.Fatalf("expected ReassignConstant, got %v", err)
	}
}

// Scenario C: a const-bound object's fields can still be mutated, since
// binding constancy only protects the binding, not the object it points to.
func TestConstObjectFieldsAreMutable(t *testing.T) {
	v, _ := run(t, `
const obj = { "count": 0 };
obj.count = obj.count + 1;
obj.count = obj.count + 1;
obj.count;
`)
	got, ok := v.(runtime.Integer)
	if !ok || got != 2 {
		t.Fatalf("expected Integer(2), got %v", v)
	}
}

// Scenario D: single-inheritance classes with a constructor, shallow
// method/property inheritance, and super() dispatch.
func TestClassConstructorAndInheritance(t *testing.T) {
	src := `
class Animal {
    sound = "...";

    fn __new__(self, name) {
        self.name = name;
    }

    fn speak(self) {
        return self.name.concat(" says ", self.sound);
    }
}

class Dog extends Animal {
    sound = "Woof";

    fn __new__(self, name) {
        super(name);
    }
}

let d = Dog("Rex");
d.speak();
`
	v, _ := run(t, src)
	got, ok := v.(runtime.String)
	if !ok || string(got) != "Rex says Woof" {
		t.Fatalf("expected %q, got %v", "Rex says Woof", v)
	}
}

// Scenario E: compound assignment on an object member desugars to a plain
// read-modify-write, and fails with UnresolvedProperty if the field was
// never declared.
func TestCompoundMemberAssignment(t *testing.T) {
	v, _ := run(t, `
let obj = { "n": 10 };
obj.n += 5;
obj.n;
`)
	got, ok := v.(runtime.Integer)
	if !ok || got != 15 {
		t.Fatalf("expected Integer(15), got %v", v)
	}

	err := runErr(t, `
let obj = {};
obj.missing += 1;
`)
	if !runtime.IsKind(err, runtime.UnresolvedProperty) {
		t.Fatalf("expected UnresolvedProperty, got %v", err)
	}
}

// Scenario F: a recursive function whose tail expression is an if/else with
// no explicit return still surfaces the active branch's value, and a while
// loop accumulates a sum correctly.
func TestRecursiveFactorialAndWhileSum(t *testing.T) {
	v, _ := run(t, `
fn factorial(n) {
    if (n < 2) {
        1;
    } else {
        n * factorial(n - 1);
    }
}
factorial(5);
`)
	got, ok := v.(runtime.Integer)
	if !ok || got != 120 {
		t.Fatalf("expected Integer(120), got %v", v)
	}

	v2, _ := run(t, `
let i = 0;
let sum = 0;
while (i < 5) {
    sum = sum + i;
    i = i + 1;
}
sum;
`)
	got2, ok := v2.(runtime.Integer)
	if !ok || got2 != 10 {
		t.Fatalf("expected Integer(10), got %v", v2)
	}
}

func TestPrintWritesToBootstrapWriter(t *testing.T) {
	_, out := run(t, `print("hello", 1, true);`)
	if strings.TrimSpace(out) != "hello 1 true" {
		t.Fatalf("unexpected print output: %q", out)
	}
}

func TestMemberMethodCallOnArray(t *testing.T) {
	v, _ := run(t, `
let arr = [1, 2, 3];
let merged = arr.merge([4, 5]);
merged.length;
`)
	got, ok := v.(runtime.Integer)
	if !ok || got != 5 {
		t.Fatalf("expected Integer(5), got %v", v)
	}
}

// A repeated method call on the same object must not corrupt the object's
// own fields: the receiver write-back after a method call belongs in the
// binding that produced the receiver (here, `b`), never in the object's
// `get` slot itself.
func TestRepeatedMethodCallDoesNotCorruptReceiver(t *testing.T) {
	src := `
class Box {
    fn __new__(self, v) {
        self.v = v;
    }

    fn get(self) {
        return self.v;
    }
}
let b = Box(1);
let first = b.get();
let second = b.get();
first + second;
`
	v, _ := run(t, src)
	got, ok := v.(runtime.Integer)
	if !ok || got != 2 {
		t.Fatalf("expected Integer(2), got %v", v)
	}
}

func TestIntegerDivisionAndModuloByZeroFail(t *testing.T) {
	if err := runErr(t, `1 / 0;`); !runtime.IsKind(err, runtime.DivisionByZero) {
		t.Fatalf("expected DivisionByZero for 1/0, got %v", err)
	}
	if err := runErr(t, `1 % 0;`); !runtime.IsKind(err, runtime.DivisionByZero) {
		t.Fatalf("expected DivisionByZero for 1%%0, got %v", err)
	}
}

func TestConstructorRejectsMultipleDefaults(t *testing.T) {
	err := runErr(t, `
class Point {
    fn __new__(self, x = 0, y = 0) {
        self.x = x;
        self.y = y;
    }
}
Point();
`)
	if !runtime.IsKind(err, runtime.InvalidDefaultParameter) {
		t.Fatalf("expected InvalidDefaultParameter, got %v", err)
	}
}

func TestStaticClassMember(t *testing.T) {
	v, _ := run(t, `
class Counter {
    static total = 0;

    static fn bump() {
        Counter.total = Counter.total + 1;
        return Counter.total;
    }
}
Counter.bump();
Counter.bump();
`)
	got, ok := v.(runtime.Integer)
	if !ok || got != 2 {
		t.Fatalf("expected Integer(2), got %v", v)
	}
}
