//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv64 || wasm

package endianrw

// NativeEndian is the byte order of the machine this build targets.
// It is fixed once per build, never probed at run time.
type NativeEndian = LittleEndian
