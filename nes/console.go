package nes

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
)

// Console wires a cartridge, a CPU bus and a CPU together into the minimal
// driver needed to load a ROM and run it: no PPU/APU/controller surface.
type Console struct {
	cartridge *cartridge
	ram       *ram
	bus       *bus
	cpu       *CPU
}

// NewConsole constructs a Console around cart. logger receives fatal-fault
// diagnostics from the CPU; it may be nil, in which case they are
// discarded. The CPU is left unreset; call Reset before stepping it.
func NewConsole(cart *cartridge, logger *log.Logger) *Console {
	r := newRAM()
	b := newBus(r, cart)
	c := NewCPU(logger)

	return &Console{
		cartridge: cart,
		ram:       r,
		bus:       b,
		cpu:       c,
	}
}

// LoadPath opens path, parses it as an iNES v1 image, and constructs a
// Console around it with a logger that writes to stderr.
func LoadPath(path string) (*Console, error) {
	cart, err := loadROMPath(path)
	if err != nil {
		return nil, err
	}
	return NewConsole(cart, log.New(os.Stderr, "", 0)), nil
}

// LoadROM parses r as an iNES v1 image and constructs a Console around it.
func LoadROM(r io.Reader, logger *log.Logger) (*Console, error) {
	cart, err := loadROM(r)
	if err != nil {
		return nil, err
	}
	return NewConsole(cart, logger), nil
}

// Reset puts the CPU into its post-reset state. pcOverride, if non-nil,
// pins the program counter instead of loading it from the reset vector
// (the nestest harness resets to $C000).
func (c *Console) Reset(pcOverride *uint16) {
	c.cpu.Reset(c.bus, pcOverride)
}

// Step advances the CPU by exactly one instruction (or serviced interrupt).
func (c *Console) Step() (uint64, error) {
	return c.cpu.Step(c.bus)
}

// TraceStep advances the CPU by exactly one instruction and returns the
// register/operand snapshot taken immediately before it ran.
func (c *Console) TraceStep() (TraceEntry, error) {
	return c.cpu.TraceStep(c.bus)
}

// TriggerNMI and TriggerIRQ forward to the underlying CPU; see CPU's own
// doc comments for latch semantics.
func (c *Console) TriggerNMI() { c.cpu.TriggerNMI() }
func (c *Console) TriggerIRQ() { c.cpu.TriggerIRQ() }

// Read and Write expose the CPU's view of the address space, mainly for
// tests that need to inspect memory a ROM has written (nestest's result
// codes at $0002/$0003, for instance).
func (c *Console) Read(address uint16) byte    { return c.bus.read(address) }
func (c *Console) Write(address uint16, v byte) { c.bus.write(address, v) }

// Run steps the console until maxInstructions have executed (0 means
// unbounded), ctx is cancelled, or the CPU reports a fatal fault. w, if
// non-nil, receives one trace line per instruction.
func (c *Console) Run(ctx context.Context, maxInstructions int, w io.Writer) error {
	for i := 0; maxInstructions == 0 || i < maxInstructions; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if w != nil {
			entry, err := c.TraceStep()
			fmt.Fprintln(w, entry.String())
			if err != nil {
				return err
			}
			continue
		}

		if _, err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}
