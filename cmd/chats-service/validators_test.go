package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressValidators(t *testing.T) {
	require.True(t, isIP4Addr("224.0.0.0:5353"))
	require.False(t, isIP4Addr("[FF02::]:5353"))
	require.True(t, isIP6Addr("[FF02::]:5353"))
	require.False(t, isIP6Addr("224.0.0.0:5353"))

	require.True(t, isTCPAddr("0.0.0.0:8080"))
	require.True(t, isTCPAddr("[::]:8080"))
	require.False(t, isTCPAddr("localhost:8080"))

	require.True(t, isHostPort("localhost:6379"))
	require.True(t, isHostPort("10.0.0.1:6379"))
	require.False(t, isHostPort("localhost"))
	require.False(t, isHostPort(":6379"))
	require.False(t, isHostPort("localhost:70000"))

	require.True(t, isIPAddr("fe80::1"))
	require.False(t, isIPAddr("chats-1.local"))
}

func TestBackendAndLevelValidators(t *testing.T) {
	require.True(t, isBackend("mdns"))
	require.True(t, isBackend("redis"))
	require.False(t, isBackend("consul"))

	require.True(t, isLogLevel("warn"))
	require.False(t, isLogLevel("fatal"))
}
