package endianrw_test

import (
	"bytes"
	"fmt"

	"github.com/torresjeff/endianrw"
)

func ExampleReadAs() {
	data := []byte{0x01, 0x23, 0x45, 0x67}

	big, _ := endianrw.ReadAs[endianrw.BigEndian, uint32](bytes.NewReader(data))
	little, _ := endianrw.ReadAs[endianrw.LittleEndian, uint32](bytes.NewReader(data))

	fmt.Printf("%#x %#x\n", big, little)
	// Output: 0x1234567 0x67452301
}

func ExampleWriteAs() {
	var buf bytes.Buffer

	endianrw.WriteAs[endianrw.BigEndian](&buf, uint32(0x01234567))
	fmt.Printf("% x\n", buf.Bytes())

	buf.Reset()
	endianrw.WriteAs[endianrw.LittleEndian](&buf, uint32(0x01234567))
	fmt.Printf("% x\n", buf.Bytes())
	// Output:
	// 01 23 45 67
	// 67 45 23 01
}
