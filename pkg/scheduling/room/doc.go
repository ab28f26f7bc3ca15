/*
Package room maps names to lazily created worker pools, so unrelated
parts of a program can share or isolate execution capacity by naming a
room instead of passing a pool around.

	reg := room.NewRegistry(8)

	db := reg.Get("db")     // created on first lookup
	same := reg.Get("db")   // same pool instance
	cpu := reg.Get("cpu")   // a different pool

The await bridge resolves rooms through room.Default(), a process-wide
registry sized from the config package. Tests and embedded uses should
inject their own registry via await.WithRegistry rather than relying on
the global.
*/
package room
