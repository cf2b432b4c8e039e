package objectfile

import (
	"bytes"
	"encoding/binary"
)

// ELF32/EM_ARM constants, per spec.md §4.6, bit-exact.
const (
	elfClass32    = 1
	elfDataLE     = 1
	elfVersion    = 1
	etREL         = 1
	emARM         = 0x28
	elfFlagsARM   = 0x05000000
	ehsize        = 52
	shentsize     = 40
	shnum         = 5
	shstrndx      = 4
	shtNULL       = 0
	shtPROGBITS   = 1
	shtSTRTAB     = 3
	shtNOBITS     = 8
	shfWRITE      = 0x1
	shfALLOC      = 0x2
	shfEXECINSTR  = 0x4
)

// shstrtab is the literal section-header string table content spec.md
// §4.6 fixes byte-for-byte, with the hardcoded sh_name offsets into it.
var shstrtab = []byte("\x00.text\x00.data\x00.bss\x00.symtab\x00.strtab\x00.shstrtab\x00")

// Section-name offsets into shstrtab, bit-exact per spec.md §4.6: these are
// the hardcoded sh_name values the spec prescribes for the five sections in
// declared order (null, .text, .data, .bss, .shstrtab) — 1, 7, 13, 17, 34 —
// reproduced literally rather than recomputed from each section's own
// substring position (see DESIGN.md).
const (
	nameOffNull     = 1
	nameOffText     = 7
	nameOffData     = 13
	nameOffBss      = 17
	nameOffShstrtab = 34
)

type sectionHeader struct {
	name      uint32
	shType    uint32
	flags     uint32
	addr      uint32
	offset    uint32
	size      uint32
	link      uint32
	info      uint32
	addralign uint32
	entsize   uint32
}

func (s sectionHeader) write(buf *bytes.Buffer) {
	binary.Write(buf, binary.LittleEndian, s.name)
	binary.Write(buf, binary.LittleEndian, s.shType)
	binary.Write(buf, binary.LittleEndian, s.flags)
	binary.Write(buf, binary.LittleEndian, s.addr)
	binary.Write(buf, binary.LittleEndian, s.offset)
	binary.Write(buf, binary.LittleEndian, s.size)
	binary.Write(buf, binary.LittleEndian, s.link)
	binary.Write(buf, binary.LittleEndian, s.info)
	binary.Write(buf, binary.LittleEndian, s.addralign)
	binary.Write(buf, binary.LittleEndian, s.entsize)
}

// WriteELF serializes words as .text bytes into a minimal ELF32-LE
// relocatable object for EM_ARM: null/.text/.data/.bss/.shstrtab sections,
// .data and .bss always empty (spec.md's explicit non-goal of a linker and
// relocations means there is never anything to put in them).
func WriteELF(words []uint32) []byte {
	text := make([]byte, 0, len(words)*4)
	for _, w := range words {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], w)
		text = append(text, b[:]...)
	}

	var buf bytes.Buffer

	ident := []byte{0x7F, 0x45, 0x4C, 0x46, elfClass32, elfDataLE, elfVersion, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	buf.Write(ident)
	binary.Write(&buf, binary.LittleEndian, uint16(etREL))
	binary.Write(&buf, binary.LittleEndian, uint16(emARM))
	binary.Write(&buf, binary.LittleEndian, uint32(elfVersion))
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // e_entry
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // e_phoff
	var eShoffPos = buf.Len()
	binary.Write(&buf, binary.LittleEndian, uint32(0)) // e_shoff, patched below
	binary.Write(&buf, binary.LittleEndian, uint32(elfFlagsARM))
	binary.Write(&buf, binary.LittleEndian, uint16(ehsize))
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // e_phentsize
	binary.Write(&buf, binary.LittleEndian, uint16(0)) // e_phnum
	binary.Write(&buf, binary.LittleEndian, uint16(shentsize))
	binary.Write(&buf, binary.LittleEndian, uint16(shnum))
	binary.Write(&buf, binary.LittleEndian, uint16(shstrndx))

	headerLen := buf.Len()

	textOffset := headerLen
	dataOffset := textOffset + len(text)
	bssOffset := dataOffset // .data is always empty
	shstrtabOffset := bssOffset

	buf.Write(text)
	buf.Write(shstrtab)

	shoff := shstrtabOffset + len(shstrtab)

	headers := []sectionHeader{
		{name: nameOffNull, shType: shtNULL},
		{
			name: nameOffText, shType: shtPROGBITS, flags: shfALLOC | shfEXECINSTR,
			offset: uint32(textOffset), size: uint32(len(text)), addralign: 4,
		},
		{
			name: nameOffData, shType: shtPROGBITS, flags: shfALLOC | shfWRITE,
			offset: uint32(dataOffset), size: 0, addralign: 1,
		},
		{
			name: nameOffBss, shType: shtNOBITS, flags: shfALLOC | shfWRITE,
			offset: uint32(bssOffset), size: 0, addralign: 1,
		},
		{
			name: nameOffShstrtab, shType: shtSTRTAB,
			offset: uint32(shstrtabOffset), size: uint32(len(shstrtab)), addralign: 1,
		},
	}
	for _, h := range headers {
		h.write(&buf)
	}

	out := buf.Bytes()
	binary.LittleEndian.PutUint32(out[eShoffPos:], uint32(shoff))
	return out
}
