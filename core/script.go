package core

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/automoto/override/shared/leveldata"
)

// scriptInputs are the globals a scripted enemy can read each frame.
var scriptInputs = []string{"x", "y", "vx", "vy", "dt", "t", "grounded", "player_x", "player_y", "gravity"}

// enemyScript is a tengo program compiled once per enemy. The script reads
// its inputs as globals and steers by assigning vx, vy and gravity.
type enemyScript struct {
	compiled *tengo.Compiled
	err      error
}

func compileEnemyScript(src string, gravity float64) (*enemyScript, error) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))
	for _, name := range scriptInputs {
		var v any = 0.0
		switch name {
		case "grounded":
			v = false
		case "gravity":
			v = gravity
		}
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("script input %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, &leveldata.LevelDataError{Field: "enemies", Reason: "compile script: " + err.Error()}
	}
	return &enemyScript{compiled: compiled}, nil
}

func (s *enemyScript) step(e *Enemy, env aiEnv) {
	c := s.compiled
	inputs := map[string]any{
		"x": e.X, "y": e.Y, "vx": e.VX, "vy": e.VY,
		"dt": env.DT, "t": env.T, "grounded": e.Grounded,
		"player_x": env.PlayerX, "player_y": env.PlayerY,
		"gravity": e.Gravity,
	}
	for name, v := range inputs {
		if err := c.Set(name, v); err != nil {
			s.fail(e, err)
			return
		}
	}
	if err := s.run(); err != nil {
		s.fail(e, err)
		return
	}
	e.VX = c.Get("vx").Float()
	e.VY = c.Get("vy").Float()
	e.Gravity = c.Get("gravity").Float()
}

// run executes the script once. The tengo VM panics on some runtime faults,
// such as integer division by zero, so those come back as errors too.
func (s *enemyScript) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("script panic: %v", r)
		}
	}()
	return s.compiled.Run()
}

// fail disables the script after its first runtime error. The error stays on
// the enemy for the shell to report.
func (s *enemyScript) fail(e *Enemy, err error) {
	s.err = err
	e.VX = 0
}

// ScriptErr returns the runtime error that stopped a scripted enemy.
func (e *Enemy) ScriptErr() error {
	if e.script == nil {
		return nil
	}
	return e.script.err
}
