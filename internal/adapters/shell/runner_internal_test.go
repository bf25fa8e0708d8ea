package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/gdmcp/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLogWriter_BuffersPartialLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	gomock.InOrder(
		log.EXPECT().Debug("stderr: part1part2"),
		log.EXPECT().Debug("stderr: crlf"),
		log.EXPECT().Debug("stderr: tail"),
	)

	w := &logWriter{logger: log, prefix: "stderr: "}
	for _, chunk := range []string{"part1", "part2\ncr", "lf\r\n", "tail"} {
		n, err := w.Write([]byte(chunk))
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
}
