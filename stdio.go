// Copyright 2021. Silvano DAL ZILIO.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package logicir

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
)

// String returns the list of literals between braces, for instance
// "{0, 1, 0, 0, 0, 0, 2, 4, 6, 6}".
func (l *ABCList) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for k, v := range l.values {
		if k > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// String returns the header followed by the literals of the list, for
// instance "{2 | 1 << 8 | 1 << 16, 2, 4, 6}".
func (l *XAGList) String() string {
	sb := l.header()
	l.ForeachEntry(func(lit0, lit1 Lit) error {
		fmt.Fprintf(sb, ", %d, %d", lit0, lit1)
		return nil
	})
	return l.footer(sb)
}

// String returns the header followed by the literals of the list, for
// instance "{3 | 1 << 8 | 1 << 16, 2, 4, 6, 8}".
func (l *MIGList) String() string {
	sb := l.header()
	l.ForeachEntry(func(lit0, lit1, lit2 Lit) error {
		fmt.Fprintf(sb, ", %d, %d, %d", lit0, lit1, lit2)
		return nil
	})
	return l.footer(sb)
}

func (p *packed) header() *strings.Builder {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "{%d | %d << 8 | %d << 16", p.NumPIs(), p.NumPOs(), p.NumGates())
	return sb
}

func (p *packed) footer(sb *strings.Builder) string {
	p.ForeachPO(func(lit Lit) error {
		fmt.Fprintf(sb, ", %d", lit)
		return nil
	})
	sb.WriteByte('}')
	return sb.String()
}

// ******************************************************************************************************

// Print outputs a table with one line for each gate and output of l.
func (l *ABCList) Print() {
	l.Fprint(os.Stdout)
}

// Fprint writes a table with one line for each gate and output of l. The
// kind of each gate is the one inferred from the order of its literals.
func (l *ABCList) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	node := 1 + l.numpis
	l.ForeachEntry(func(lit0, lit1 Lit) error {
		fmt.Fprintf(tw, "%d\t= %s\t(%s,\t%s)\n", node, abcKind(lit0, lit1), lit0, lit1)
		node++
		return nil
	})
	printpos(tw, l)
	return tw.Flush()
}

// Print outputs a table with one line for each gate and output of l.
func (l *XAGList) Print() {
	l.Fprint(os.Stdout)
}

// Fprint writes a table with one line for each gate and output of l. The
// kind of each gate is the one inferred from the order of its literals.
func (l *XAGList) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	node := 1 + l.NumPIs()
	l.ForeachEntry(func(lit0, lit1 Lit) error {
		fmt.Fprintf(tw, "%d\t= %s\t(%s,\t%s)\n", node, xagKind(lit0, lit1), lit0, lit1)
		node++
		return nil
	})
	printpos(tw, l)
	return tw.Flush()
}

// Print outputs a table with one line for each gate and output of l.
func (l *MIGList) Print() {
	l.Fprint(os.Stdout)
}

// Fprint writes a table with one line for each gate and output of l.
func (l *MIGList) Fprint(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	node := 1 + l.NumPIs()
	l.ForeachEntry(func(lit0, lit1, lit2 Lit) error {
		fmt.Fprintf(tw, "%d\t= %s\t(%s,\t%s,\t%s)\n", node, KindMaj, lit0, lit1, lit2)
		node++
		return nil
	})
	printpos(tw, l)
	return tw.Flush()
}

func printpos(w io.Writer, l polist) {
	k := 0
	l.ForeachPO(func(lit Lit) error {
		fmt.Fprintf(w, "po%d\t= %s\n", k, lit)
		k++
		return nil
	})
}
