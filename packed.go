// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package logicir

import "github.com/pkg/errors"

// packed holds the words of an index list starting with a packed header. The
// header is split into | gates (16 bits) | outputs (8 bits) | inputs (8 bits) |
// and is followed by the gate entries and then by one literal per output.
type packed struct {
	values []uint32
}

func makepacked(numPIs int) (packed, error) {
	if numPIs < 0 {
		return packed{}, errors.Wrapf(ErrNegativeCount, "%d inputs", numPIs)
	}
	if numPIs > int(_MAXPIS) {
		return packed{}, errors.Wrapf(ErrHeaderOverflow, "%d inputs (max %d)", numPIs, _MAXPIS)
	}
	return packed{values: []uint32{uint32(numPIs)}}, nil
}

// parsepacked checks that the length of values matches its header, with arity
// words per gate.
func parsepacked(values []uint32, arity int) (packed, error) {
	if len(values) == 0 {
		return packed{}, errors.Wrap(ErrMalformed, "missing header")
	}
	p := packed{values: make([]uint32, len(values))}
	copy(p.values, values)
	if expected := 1 + arity*p.NumGates() + p.NumPOs(); expected != len(values) {
		return packed{}, errors.Wrapf(ErrMalformed, "header %d | %d << 8 | %d << 16 requires %d words, found %d",
			p.NumPIs(), p.NumPOs(), p.NumGates(), expected, len(values))
	}
	return p, nil
}

// Raw returns a copy of the words in the list, header included.
func (p *packed) Raw() []uint32 {
	res := make([]uint32, len(p.values))
	copy(res, p.values)
	return res
}

// Size returns the number of words in the list, header included.
func (p *packed) Size() int {
	return len(p.values)
}

// NumGates returns the number of gates.
func (p *packed) NumGates() int {
	return int(p.values[0] >> 16)
}

// NumPIs returns the number of primary inputs.
func (p *packed) NumPIs() int {
	return int(p.values[0] & 0xFF)
}

// NumPOs returns the number of primary outputs.
func (p *packed) NumPOs() int {
	return int((p.values[0] >> 8) & 0xFF)
}

// ForeachPO calls fn on the literal of each output.
func (p *packed) ForeachPO(fn func(lit Lit) error) error {
	for i := len(p.values) - p.NumPOs(); i < len(p.values); i++ {
		if err := fn(Lit(p.values[i])); err != nil {
			return err
		}
	}
	return nil
}

// AddInputs adds n primary inputs. Inputs must be added before any gate and
// there can be at most 255 of them. Outputs already in the list only refer to
// inputs and constants, so they are left unchanged.
func (p *packed) AddInputs(n int) error {
	if n < 0 {
		return errors.Wrapf(ErrNegativeCount, "%d inputs in AddInputs", n)
	}
	if p.NumGates() > 0 {
		return errors.Wrap(ErrLayout, "inputs added after gates")
	}
	if n > int(_MAXPIS)-p.NumPIs() {
		return errors.Wrapf(ErrHeaderOverflow, "%d more inputs with %d already defined (max %d)", n, p.NumPIs(), _MAXPIS)
	}
	p.values[0] += uint32(n)
	return nil
}

// AddOutput adds a primary output driven by lit. There can be at most 255
// outputs.
func (p *packed) AddOutput(lit Lit) error {
	if uint32(p.NumPOs()) >= _MAXPOS {
		return errors.Wrapf(ErrHeaderOverflow, "more than %d outputs", _MAXPOS)
	}
	if err := checklit(lit, p.numnodes()); err != nil {
		return err
	}
	p.values[0] = uint32(p.NumPOs()+1)<<8 | (p.values[0] & 0xFFFF00FF)
	p.values = append(p.values, uint32(lit))
	return nil
}

// addgate appends the literals of a new gate and updates the header.
func (p *packed) addgate(lits ...Lit) error {
	if p.NumPOs() > 0 {
		return errors.Wrap(ErrLayout, "gate added after outputs")
	}
	if uint32(p.NumGates()) >= _MAXGATES {
		return errors.Wrapf(ErrHeaderOverflow, "more than %d gates", _MAXGATES)
	}
	nodes := p.numnodes()
	for _, lit := range lits {
		if err := checklit(lit, nodes); err != nil {
			return err
		}
	}
	p.values[0] = uint32(p.NumGates()+1)<<16 | (p.values[0] & 0xFFFF)
	for _, lit := range lits {
		p.values = append(p.values, uint32(lit))
	}
	return nil
}

// numnodes returns the number of nodes defined so far, constant included.
func (p *packed) numnodes() int {
	return 1 + p.NumPIs() + p.NumGates()
}

// checkoutputs validates the output literals of a parsed list.
func (p *packed) checkoutputs() error {
	nodes := p.numnodes()
	return p.ForeachPO(func(lit Lit) error {
		return checklit(lit, nodes)
	})
}
