// Package vcs 封装对版本控制工具的外部调用。
// 扫描器通过 Oracle 接口批量询问“这些路径是否被忽略”，
// 本包是整个程序中唯一允许启动外部进程的位置。
package vcs

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Oracle 对一批相对路径做忽略裁决。
//
// 返回值是“被忽略路径”的集合；请求中的路径不在集合里即视为未忽略。
// 实现必须软失败：工具不可用、超时或解析失败都返回空集合，
// 绝不让裁决失败中断扫描。
type Oracle interface {
	Resolve(relPaths []string) map[string]bool
}

// NopOracle 是外部工具不可用时的降级实现：从不忽略任何路径。
type NopOracle struct{}

// Resolve 恒返回空集合。
func (NopOracle) Resolve([]string) map[string]bool {
	return map[string]bool{}
}

// checkIgnoreTimeout 是单次批量调用的上限。
// 批量调用次数有界，给大仓库留出宽裕时间即可。
const checkIgnoreTimeout = 15 * time.Second

// runner 执行外部命令并返回 stdout，供测试注入假实现。
type runner func(ctx context.Context, root string, input []byte) ([]byte, error)

// GitOracle 通过一次批量的 git check-ignore 调用完成裁决，
// 摊薄进程启动开销。
type GitOracle struct {
	root string
	run  runner
}

// NewOracle 按扫描根目录选择 oracle 实现。
// 根目录不在 git 仓库内、或 PATH 中找不到 git 时退化为 NopOracle。
func NewOracle(root string) Oracle {
	if _, err := exec.LookPath("git"); err != nil {
		return NopOracle{}
	}
	if info, err := os.Stat(filepath.Join(root, ".git")); err != nil || !info.IsDir() {
		return NopOracle{}
	}
	return &GitOracle{root: root, run: runGitCheckIgnore}
}

// Resolve 把全部路径用 NUL 连接后喂给 git check-ignore --stdin -z，
// 输出中的每个路径都是被忽略的。任何异常都按“无忽略”处理。
func (o *GitOracle) Resolve(relPaths []string) map[string]bool {
	ignored := map[string]bool{}
	if len(relPaths) == 0 {
		return ignored
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkIgnoreTimeout)
	defer cancel()

	input := []byte(joinNUL(relPaths))
	output, err := o.run(ctx, o.root, input)
	if err != nil || len(output) == 0 {
		return ignored
	}

	for _, part := range bytes.Split(output, []byte{0}) {
		if len(part) == 0 {
			continue
		}
		ignored[string(part)] = true
	}
	return ignored
}

// runGitCheckIgnore 是生产环境使用的 runner。
// 退出码 1 表示“没有任何路径被忽略”，不算失败。
func runGitCheckIgnore(ctx context.Context, root string, input []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "git", "check-ignore", "--stdin", "-z")
	cmd.Dir = root
	cmd.Stdin = bytes.NewReader(input)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = nil

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return stdout.Bytes(), nil
		}
		return nil, err
	}
	return stdout.Bytes(), nil
}

// joinNUL 用 NUL 字节连接路径，配合 --stdin -z 协议。
func joinNUL(paths []string) string {
	var builder bytes.Buffer
	for index, path := range paths {
		if index > 0 {
			builder.WriteByte(0)
		}
		builder.WriteString(path)
	}
	return builder.String()
}
