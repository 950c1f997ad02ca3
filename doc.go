// Package ftdiflash reads SPI NOR flash chips through an FTDI FT232H
// USB-to-SPI bridge running in MPSSE mode.
//
// Wiring for the C232HM cable:
//
//	Flash pin    | FT232H | Wire color
//	-------------+--------+-----------
//	CS       (1) | ADBUS3 | brown
//	DO/MISO  (2) | ADBUS2 | green
//	WP       (3) | ADBUS4 | grey
//	GND      (4) | N/A    | black
//	DI/MOSI  (5) | ADBUS1 | yellow
//	CLK      (6) | ADBUS0 | orange
//	HOLD     (7) | ADBUS5 | purple
//	Vcc      (8) | N/A    | red
//
// # References:
//
// FTDI (https://ftdichip.com/document/application-notes/)
//   - [FTDI-AN_108]: Command Processor for MPSSE and MCU Host Bus Emulation Modes (https://ftdichip.com/wp-content/uploads/2020/08/AN_108_Command_Processor_for_MPSSE_and_MCU_Host_Bus_Emulation_Modes.pdf)
//   - [FTDI-AN_114]: Interfacing FT2232H Hi-Speed Devices To SPI Bus (https://ftdichip.com/wp-content/uploads/2020/08/AN_114_FTDI_Hi_Speed_USB_To_SPI_Example.pdf)
//   - [FTDI-AN_135]: FTDI MPSSE Basics (https://ftdichip.com/wp-content/uploads/2020/08/AN_135_MPSSE_Basics.pdf)
//   - [C232HM-DS]: C232HM MPSSE Cable Datasheet (https://ftdichip.com/wp-content/uploads/2020/07/DS_C232HM_MPSSE_CABLE.pdf)
//
// SPI Flash
//   - [W25Q128]: W25Q128JV Winbond Serial Flash Memory (https://www.winbond.com/resource-files/w25q128jv%20revf%2003272018%20plus.pdf)
//   - [N25Q32]: N25Q032A Micron Serial NOR Flash Memory datasheet (could not find the official public URL)
package ftdiflash
