package ttyline

const (
	CharCtrlA     = 0x01
	CharLineStart = CharCtrlA

	CharCtrlB    = 0x02
	CharBackward = CharCtrlB

	CharCtrlC     = 0x03
	CharInterrupt = CharCtrlC

	CharCtrlD  = 0x04
	CharDelete = CharCtrlD

	CharCtrlE   = 0x05
	CharLineEnd = CharCtrlE

	CharCtrlF   = 0x06
	CharForward = CharCtrlF

	CharCtrlG = 0x07
	CharBell  = CharCtrlG

	CharCtrlH = 0x08

	CharCtrlI = 0x09
	CharTab   = CharCtrlI

	CharCtrlJ = 0x0A

	CharCtrlK = 0x0B
	CharKill  = CharCtrlK

	CharCtrlL  = 0x0C
	CharClear  = CharCtrlL
	CharCtrlM  = 0x0D
	CharEnter  = CharCtrlM
	CharCtrlT  = 0x14
	CharCtrlU  = 0x15
	CharCtrlW  = 0x17
	CharCtrlY  = 0x19
	CharCtrlZ  = 0x1A
	CharEscape = 0x1B

	CharTranspose   = CharCtrlT
	CharKillFront   = CharCtrlU
	CharKillWordBck = CharCtrlW
	CharYank        = CharCtrlY
	CharSuspend     = CharCtrlZ

	CharBackspace = 0x7F
)
