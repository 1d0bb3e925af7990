//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package endianrw

// NativeEndian is the byte order of the machine this build targets.
// It is fixed once per build, never probed at run time.
type NativeEndian = BigEndian
