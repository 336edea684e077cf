package parser

import (
	"strings"
	"testing"
)

const benchGame = `[White "Adam"]
[Black "Lucy"]

Lucy 56-47 Adam 21-30 Lucy 54-43 Adam 30x52 {regular jump}
Lucy 61x43 Adam 23-34 Lucy 47x25 Adam 12-23 Lucy 50-41 Adam 10-21
`

func BenchmarkParseGame(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p := NewParser(strings.NewReader(benchGame))
		if _, err := p.ParseGame(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkLexer(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l := NewLexer(strings.NewReader(benchGame))
		for l.NextToken().Type != EOFToken {
		}
	}
}
