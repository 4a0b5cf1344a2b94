package languages

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"locr/internal/model"
)

// ErrUndecodable 表示文件内容无法按文本解码（二进制或非 UTF-8）。
// 上层遇到该错误时应整体跳过文件，不贡献任何计数。
var ErrUndecodable = errors.New("undecodable content")

// Classify 按画像对文件内容做流式逐行分类。
//
// 这是启发式分类而非语法解析：字符串字面量内出现的注释标记
// 会被误判为注释，这是已知并被接受的精度边界。
//
// 单行判定顺序（与原始启发式保持一致）：
//  1. 去除首尾空白后为空 → blank
//  2. 处于块注释内 → comment；本行若含匹配的闭合符则退出块状态，
//     闭合符之后的内容不再二次判定
//  3. 以某个块注释开启符起始 → comment；同一行未闭合则进入块状态
//  4. 以某个行注释标记起始 → comment
//  5. 其余 → code
//
// 块开启符先于行注释标记判定，否则 Lua 的 --[[ 会被 -- 吞掉。
// 块状态不跨文件：EOF 时直接丢弃。
func (p *Profile) Classify(reader io.Reader) (model.LineMetrics, error) {
	var metrics model.LineMetrics

	bufferedReader := bufio.NewReader(reader)
	inBlock := false
	var blockClose string

	for {
		line, err := bufferedReader.ReadString('\n')
		// 完整 EOF（无残余字符）直接结束。
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return model.LineMetrics{}, err
		}

		if strings.IndexByte(line, 0) >= 0 || !utf8.ValidString(line) {
			return model.LineMetrics{}, ErrUndecodable
		}

		stripped := strings.TrimSpace(line)

		switch {
		case stripped == "":
			metrics.Blank++

		case inBlock:
			metrics.Comment++
			if strings.Contains(line, blockClose) {
				inBlock = false
				blockClose = ""
			}

		default:
			delimiter, opensBlock := p.matchBlockOpen(stripped)
			switch {
			case opensBlock:
				metrics.Comment++
				// 同一行未出现闭合符才真正进入块状态。
				if !strings.Contains(stripped[len(delimiter.Open):], delimiter.Close) {
					inBlock = true
					blockClose = delimiter.Close
				}
			case p.matchLineComment(stripped):
				metrics.Comment++
			default:
				metrics.Code++
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return metrics, nil
}

// matchBlockOpen 判断去空白后的行是否以某个块开启符起始。
func (p *Profile) matchBlockOpen(stripped string) (BlockDelimiter, bool) {
	for _, delimiter := range p.BlockComments {
		if strings.HasPrefix(stripped, delimiter.Open) {
			return delimiter, true
		}
	}
	return BlockDelimiter{}, false
}

// matchLineComment 判断去空白后的行是否以某个行注释标记起始。
func (p *Profile) matchLineComment(stripped string) bool {
	for _, token := range p.LineComments {
		if strings.HasPrefix(stripped, token) {
			return true
		}
	}
	return false
}
