package shogi

import (
	"fmt"
	"strings"
)

// ParseError 描述文本输入在哪里、因为什么解析失败。Offset 指向输入里第一个
// 无法接受的字节，Remainder 是从那里开始尚未消费的内容。
type ParseError struct {
	Expected  string // 期望读到的内容
	Offset    int
	Remainder string
}

func (e *ParseError) Error() string {
	rem := e.Remainder
	if len(rem) > 24 {
		rem = rem[:24] + "..."
	}
	return fmt.Sprintf("parse: expected %s at offset %d, remaining %q", e.Expected, e.Offset, rem)
}

// scanner 是逐字节推进的手写扫描器，局面图和棋谱着手的解析共用。
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) errExpected(what string) *ParseError {
	return &ParseError{Expected: what, Offset: s.pos, Remainder: s.src[s.pos:]}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek 返回当前字节，读尽时返回 0。
func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.src[s.pos]
}

// literal 消费一段固定文本。
func (s *scanner) literal(lit string) error {
	if !strings.HasPrefix(s.src[s.pos:], lit) {
		return s.errExpected(fmt.Sprintf("%q", lit))
	}
	s.pos += len(lit)
	return nil
}

// tryLiteral 在开头匹配时消费固定文本，否则原地不动。
func (s *scanner) tryLiteral(lit string) bool {
	if strings.HasPrefix(s.src[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// digit 消费一个 lo..hi 范围内的数字。
func (s *scanner) digit(lo, hi int) (int, error) {
	c := s.peek()
	v := int(c - '0')
	if c < '0' || c > '9' || v < lo || v > hi {
		return 0, s.errExpected(fmt.Sprintf("digit %d-%d", lo, hi))
	}
	s.pos++
	return v, nil
}

// number 消费一串十进制数字，至少一位。
func (s *scanner) number() (int, error) {
	start := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, s.errExpected("number")
	}
	v := 0
	for i := start; i < s.pos; i++ {
		v = v*10 + int(s.src[i]-'0')
	}
	return v, nil
}

// faceCode 消费一个两字母驹面代号。
func (s *scanner) faceCode() (Face, error) {
	if s.pos+2 > len(s.src) {
		return NoFace, s.errExpected("piece code")
	}
	f, ok := codeFaces[s.src[s.pos:s.pos+2]]
	if !ok {
		return NoFace, s.errExpected("piece code")
	}
	s.pos += 2
	return f, nil
}

// expectEOF 要求输入已被完整消费。
func (s *scanner) expectEOF() error {
	if !s.eof() {
		return s.errExpected("end of input")
	}
	return nil
}
