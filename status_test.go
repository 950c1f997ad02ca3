package ftdiflash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRegisterFlags(t *testing.T) {
	sr := StatusRegister(0x03) // BUSY | WEL
	assert.True(t, sr.Busy())
	assert.True(t, sr.WriteEnabled())
	assert.False(t, sr.StatusRegisterProtect())
	assert.Equal(t, byte(0), sr.BlockProtect())

	sr = StatusRegister(0x1C) // BP2..BP0
	assert.Equal(t, byte(0b111), sr.BlockProtect())
	assert.False(t, sr.Busy())
}

func TestStatusRegisterString(t *testing.T) {
	assert.Equal(t, "00000000", StatusRegister(0).String())
	assert.Equal(t, "00000011 WEL,BUSY", StatusRegister(0x03).String())
	assert.Contains(t, StatusRegister(0x80).String(), "SRP")
}

func TestReadStatusRegister(t *testing.T) {
	m := newMockTransport(0)
	r := New(m, nil)

	sr, err := r.ReadStatusRegister()
	require.NoError(t, err)
	assert.Equal(t, StatusRegister(0), sr)
	assert.Equal(t, []byte{0x05}, m.writes[0])
}
