package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ezrec/mipsim/vm"
)

// registerTable renders the register file, one register per row.
func registerTable(m *vm.Machine) string {
	regTable := table.NewWriter()
	regTable.SetTitle(f("Registers (pc %d, %d ticks)", m.Pc, m.Ticks))
	regTable.AppendHeader(table.Row{"#", "Register", "Alias", "Value"})

	n := 0
	for name, value := range m.Register.All() {
		regTable.AppendRow(table.Row{n, name, fmt.Sprintf("$r%d", n), value.String()})
		n++
	}

	return regTable.Render()
}
