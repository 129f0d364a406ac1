package command

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAddsSetupDBCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "app"}
	Register(rootCmd, func() (*Command, func(), error) {
		return nil, nil, errors.New("unreachable")
	})

	sub, _, err := rootCmd.Find([]string{"setup-db"})
	require.NoError(t, err)
	assert.Equal(t, "setup-db", sub.Use)
}

func TestRegisterWiresCommandAtRunTime(t *testing.T) {
	rootCmd := &cobra.Command{Use: "app"}

	// 依賴要等到子命令真的執行才建構（logger 等資源在 closure 內初始化）
	called := 0
	Register(rootCmd, func() (*Command, func(), error) {
		called++
		return nil, nil, errors.New("wire failed")
	})
	assert.Zero(t, called)

	sub, _, err := rootCmd.Find([]string{"setup-db"})
	require.NoError(t, err)

	assert.Panics(t, func() { sub.Run(sub, nil) })
	assert.Equal(t, 1, called)
}
