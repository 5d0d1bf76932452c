// Package record 读写整局棋谱文件：一行一手，从平手初局按先后手交替复盘。
// 读入时兼容 UTF-8（带或不带 BOM）与 Shift-JIS 两种编码，写出一律 UTF-8。
package record

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"shogi/internal/shogi"
)

// Game 是一局复盘的结果：完整的着手序列和推演出的最终局面。
type Game struct {
	Moves []shogi.Move
	Final *shogi.Position
}

// Parse 从棋谱文本复盘一局棋。空行和以 ' 开头的注释行跳过，其余每行必须
// 是一手按盘面合法的着手，错误信息带上行号。
func Parse(text string) (*Game, error) {
	g := &Game{Final: shogi.NewInitialPosition()}
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "'") {
			continue
		}
		m, err := g.Final.DecodeMove(line)
		if err != nil {
			return nil, fmt.Errorf("record line %d: %w", i+1, err)
		}
		if !legal(g.Final, m) {
			return nil, fmt.Errorf("record line %d: illegal move %s", i+1, line)
		}
		g.Moves = append(g.Moves, m)
		g.Final = g.Final.Apply(m)
	}
	return g, nil
}

// legal 对照生成器检查着手是否真的可走。
func legal(p *shogi.Position, m shogi.Move) bool {
	for _, cand := range p.GenerateMoves() {
		if cand == m {
			return true
		}
	}
	return false
}

// Load 读入一个棋谱文件并复盘。
func Load(path string) (*Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	text, err := decodeBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	g, err := Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// decodeBytes 收拾编码：去掉 UTF-8 BOM，不是合法 UTF-8 的内容按 Shift-JIS
// 解码。棋谱工具圈里这两种编码都常见。
func decodeBytes(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, _, err := transform.Bytes(japanese.ShiftJIS.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode shift-jis: %w", err)
	}
	return string(out), nil
}

// Save 把一局着手写成 UTF-8 棋谱文件，一行一手。
func Save(path string, moves []shogi.Move) error {
	var b strings.Builder
	for _, m := range moves {
		if m.Kind == shogi.MoveTerminal {
			return fmt.Errorf("record: terminal move has no text form")
		}
		b.WriteString(shogi.EncodeMove(m))
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
