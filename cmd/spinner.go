package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// spinner 是 stderr 上的扫描进度指示器。
// 只在 stderr 是终端且不做文件导出时启用；
// 表格/JSON 输出走 stdout，两者互不污染。
type spinner struct {
	enabled  bool
	message  string
	frames   [4]string
	index    int
	lastSpin time.Time
	lastLen  int
}

// isTerminal 判断文件是否连接到终端字符设备。
func isTerminal(file *os.File) bool {
	stat, err := file.Stat()
	return err == nil && (stat.Mode()&os.ModeCharDevice) != 0
}

// newSpinner 创建进度指示器。
func newSpinner(scannedPath string, enabled bool) *spinner {
	return &spinner{
		enabled: enabled && isTerminal(os.Stderr),
		message: fmt.Sprintf("locr: scanning %s...", scannedPath),
		frames:  [4]string{"|", "/", "-", "\\"},
	}
}

// Tick 在每个文件开始处理时推进一帧，100ms 节流。
func (s *spinner) Tick() {
	if !s.enabled {
		return
	}

	now := time.Now()
	if now.Sub(s.lastSpin) < 100*time.Millisecond {
		return
	}
	s.lastSpin = now

	frame := s.frames[s.index%len(s.frames)]
	s.index++
	s.printStatus(fmt.Sprintf("%s %s", s.message, frame))
}

// Clear 清除进度行，在输出报表前调用。
func (s *spinner) Clear() {
	if !s.enabled || s.lastLen == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.lastLen))
	s.lastLen = 0
}

func (s *spinner) printStatus(status string) {
	if s.lastLen > len(status) {
		status = status + strings.Repeat(" ", s.lastLen-len(status))
	}
	s.lastLen = len(status)
	fmt.Fprintf(os.Stderr, "\r%s", status)
}
