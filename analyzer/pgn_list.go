package analyzer

// Originally from https://github.com/canboat/canboat (Apache License, Version 2.0)
// (C) 2009-2023, Kees Verruijt, Harlingen, The Netherlands.

// This file is part of CANboat.

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

import (
	"math"

	"github.com/seabus/n2kbridge/common"
)

// createPGNList returns all PGN definitions, sorted ascending by PGN.
// Catch-all (fallback) entries precede real definitions with the same PGN
// so that a PRN with no specific definition still decodes as binary data.
//
//nolint:lll
func createPGNList() []PGNInfo {
	return []PGNInfo{
		{
			Description: "0xE800-0xEE00: Standardized single-frame addressed",
			PGN:         0xe800,
			Complete:    PacketStatusIncomplete,
			PacketType:  PacketTypeSingle,
			FieldList:   varLenFieldListToFixed([]PGNField{binaryField("Data", 8 * 8, "")}),
			Fallback:    true,
			Explanation: "Standardized PGNs in PDU1 (addressed) single-frame PGN range 0xE800 to 0xEE00 (59392 - 60928). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "ISO Acknowledgement",
			PGN:         59392,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("Control", 8*1, "ISO_ACKNOWLEDGEMENT"),
				uint8Field("Group Function"),
				reservedField(24),
				pgnPGNField("PGN", "Parameter Group Number of requested information"),
			}),
			Interval: math.MaxUint16,
			Explanation: "This message is provided by ISO 11783 for a handshake mechanism between transmitting and receiving devices. " +
				"This message is the possible response to acknowledge the reception of a normal broadcast message or the " +
				"response to a specific command to indicate compliance or failure.",
		},

		{
			Description: "ISO Request",
			PGN:         59904,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList:   varLenFieldListToFixed([]PGNField{pgnPGNField("PGN", "")}),
			Interval:    math.MaxUint16,
			Explanation: "As defined by ISO, this message has a data length of 3 bytes with no padding added to complete the single " +
				"frame. The appropriate response to this message is based on the PGN being requested, and whether the receiver " +
				"supports the requested PGN.",
		},

		{
			Description: "ISO Address Claim",
			PGN:         60928,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				simpleDescField("Unique Number", 21, "ISO Identity Number"),
				manufacturerField("", "", false),
				simpleDescField("Device Instance Lower", 3, "ISO ECU Instance"),
				simpleDescField("Device Instance Upper", 5, "ISO Function Instance"),
				lookupTripletField("Device Function", 8*1, "DEVICE_FUNCTION", "ISO Function", 7),
				spareField(1),
				lookupField("Device Class", 7, "DEVICE_CLASS"),
				simpleDescField("System Instance", 4, "ISO Device Class Instance"),
				lookupField("Industry Group", 3, "INDUSTRY_CODE"),
				simpleDescField("Arbitrary Address Capable", 1,
					"Field indicates whether the device is capable to claim a new address if its current address conflicts with another device"),
			}),
			Interval: math.MaxUint16,
			Explanation: "This network management message is used to claim network address, reply to devices requesting the claimed " +
				"address, and to respond with device information (NAME) requested by the ISO Request or Complex Request Group " +
				"Function. This PGN contains several fields that are requestable, either independently or in any combination.",
		},

		{
			Description: "0xEF00: Manufacturer Proprietary single-frame addressed",
			PGN:         0xef00,
			Complete:    PacketStatusIncompleteLookup,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed(append(manufacturerFields(),
				binaryField("Data", 8*6, ""))),
			Fallback: true,
			Explanation: "Manufacturer proprietary PGNs in PDU1 (addressed) single-frame PGN 0xEF00 (61184). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "0xF000-0xFEFF: Standardized single-frame non-addressed",
			PGN:         0xf000,
			Complete:    PacketStatusIncomplete,
			PacketType:  PacketTypeSingle,
			FieldList:   varLenFieldListToFixed([]PGNField{binaryField("Data", 8 * 8, "")}),
			Fallback:    true,
			Explanation: "Standardized PGNs in PDU2 (non-addressed) single-frame PGN range 0xF000 to 0xFEFF (61440 - 65279). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "0xFF00-0xFFFF: Manufacturer Proprietary single-frame non-addressed",
			PGN:         0xff00,
			Complete:    PacketStatusIncompleteLookup,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed(append(manufacturerFields(),
				binaryField("Data", 8*6, ""))),
			Fallback: true,
			Explanation: "Manufacturer proprietary PGNs in PDU2 (non-addressed) single-frame PGN range 0xFF00 to 0xFFFF (65280 - 65535). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "Furuno: Heave",
			PGN:         65280,
			Complete:    PacketStatusIncomplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed(append(company("1855"),
				distanceFix32MmField("Heave", ""),
				reservedField(8*2))),
		},

		{
			Description: "0x1ED00-0x1EE00: Standardized fast-packet addressed",
			PGN:         0x1ed00,
			Complete:    PacketStatusIncomplete,
			PacketType:  PacketTypeFast,
			FieldList:   varLenFieldListToFixed([]PGNField{binaryField("Data", 8 * common.FastPacketMaxSize, "")}),
			Fallback:    true,
			Explanation: "Standardized PGNs in PDU1 (addressed) fast-packet PGN range 0x1ED00 to 0x1EE00 (126208 - 126464). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "NMEA - Request group function",
			PGN:         126208,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				matchLookupField("Function Code", 8*1, "0", "GROUP_FUNCTION"),
				pgnPGNField("PGN", "Requested PGN"),
				timeUfix32MsField("Transmission interval", ""),
				timeUfix16CsField("Transmission interval offset", ""),
				uint8DescField("Number of Parameters", "How many parameter pairs will follow"),
				fieldIndex("Parameter", "Parameter index"),
				variableField("Value", "Parameter value, variable length"),
			}),
			Interval:        math.MaxUint16,
			RepeatingCount1: 2,
			RepeatingStart1: 6,
			RepeatingField1: 5,
			Explanation: "This is the Request variation of this group function PGN. The receiver shall respond by sending the requested " +
				"PGN, at the desired transmission interval.",
		},

		{
			Description: "NMEA - Command group function",
			PGN:         126208,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				matchLookupField("Function Code", 8*1, "1", "GROUP_FUNCTION"),
				pgnPGNField("PGN", "Commanded PGN"),
				lookupField("Priority", 4, "PRIORITY"),
				reservedField(4),
				uint8DescField("Number of Parameters", "How many parameter pairs will follow"),
				fieldIndex("Parameter", "Parameter index"),
				variableField("Value", "Parameter value, variable length"),
			}),
			Interval:        math.MaxUint16,
			RepeatingCount1: 2,
			RepeatingStart1: 6,
			RepeatingField1: 5,
			Explanation: "This is the Command variation of this group function PGN. This instructs the receiver to modify its internal " +
				"state for the passed parameters. The receiver shall reply with an Acknowledge reply.",
		},

		{
			Description: "PGN List (Transmit and Receive)",
			PGN:         126464,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("Function Code", 8*1, "PGN_LIST_FUNCTION"),
				pgnPGNField("PGN", ""),
			}),
			Interval:        math.MaxUint16,
			RepeatingCount1: 1,
			RepeatingStart1: 2,
			RepeatingField1: 255,
		},

		{
			Description: "0x1EF00: Manufacturer Proprietary fast-packet addressed",
			PGN:         0x1ef00,
			Complete:    PacketStatusIncompleteLookup,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed(append(manufacturerFields(),
				binaryField("Data", 8*(common.FastPacketMaxSize-2), ""))),
			Fallback: true,
			Explanation: "Manufacturer proprietary PGNs in PDU1 (addressed) fast-packet PGN 0x1EF00 (126720). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "0x1F000-0x1FEFF: Standardized mixed single/fast packet non-addressed",
			PGN:         0x1f000,
			Complete:    PacketStatusIncomplete,
			PacketType:  PacketTypeFast,
			FieldList:   varLenFieldListToFixed([]PGNField{binaryField("Data", 8 * common.FastPacketMaxSize, "")}),
			Fallback:    true,
			Explanation: "Standardized PGNs in PDU2 (non-addressed) mixed single/fast packet PGN range 0x1F000 to 0x1FEFF (126976 - 130815). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "System Time",
			PGN:         126992,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				lookupField("Source", 4, "SYSTEM_TIME"),
				reservedField(4),
				dateField("Date"),
				timeField("Time"),
			}),
			Interval: 1000,
			Explanation: "The purpose of this PGN is twofold: To provide a regular transmission of UTC time and date. To provide " +
				"synchronism for measurement data.",
		},

		{
			Description: "Product Information",
			PGN:         126996,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				versionField("NMEA 2000 Version"),
				uint16Field("Product Code"),
				stringFixField("Model ID", 8*32),
				stringFixField("Software Version Code", 8*32),
				stringFixField("Model Version", 8*32),
				stringFixField("Model Serial Code", 8*32),
				uint8Field("Certification Level"),
				uint8Field("Load Equivalency"),
			}),
			Interval:    math.MaxUint16,
			Explanation: "Provides product information onto the network that could be important for determining quality of data coming from this product.",
		},

		{
			Description: "Configuration Information",
			PGN:         126998,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				stringlauField("Installation Description #1"),
				stringlauField("Installation Description #2"),
				stringlauField("Manufacturer Information"),
			}),
			Interval: math.MaxUint16,
			Explanation: "Free-form alphanumeric fields describing the installation (e.g., starboard engine room location) of the " +
				"device and installation notes (e.g., calibration data).",
		},

		{
			Description: "Rudder",
			PGN:         127245,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				instanceField(),
				lookupField("Direction Order", 3, "DIRECTION_RUDDER"),
				reservedField(5),
				angleI16Field("Angle Order", ""),
				angleI16Field("Position", ""),
				reservedField(8 * 2),
			}),
			Interval: 100,
		},

		{
			Description: "Vessel Heading",
			PGN:         127250,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				angleU16Field("Heading", ""),
				angleI16Field("Deviation", ""),
				angleI16Field("Variation", ""),
				lookupField("Reference", 2, "DIRECTION_REFERENCE"),
				reservedField(6),
			}),
			Interval: 100,
		},

		{
			Description: "Rate of Turn",
			PGN:         127251,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				rotationFix32Field("Rate"),
				reservedField(8 * 3),
			}),
			Interval: 100,
		},

		{
			Description: "Attitude",
			PGN:         127257,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				angleI16Field("Yaw", ""),
				angleI16Field("Pitch", ""),
				angleI16Field("Roll", ""),
				reservedField(8 * 1),
			}),
			Interval: 1000,
		},

		{
			Description: "Engine Parameters, Rapid Update",
			PGN:         127488,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("Instance", 8*1, "ENGINE_INSTANCE"),
				rotationUfix16RPMField("Speed"),
				pressureUfix16HPAField("Boost Pressure"),
				simpleSignedField("Tilt/Trim", 8*1),
				reservedField(8 * 2),
			}),
			Interval: 100,
		},

		{
			Description: "Engine Parameters, Dynamic",
			PGN:         127489,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("Instance", 8*1, "ENGINE_INSTANCE"),
				pressureUfix16HPAField("Oil pressure"),
				temperatureHighField("Oil temperature"),
				temperatureField("Temperature"),
				voltageI1610mvField("Alternator Potential"),
				volumetricFlowField("Fuel Rate"),
				timeUfix32SField("Total Engine hours", "Cumulative runtime of engine"),
				pressureUfix16HPAField("Coolant Pressure"),
				pressureUfix16KpaField("Fuel Pressure"),
				reservedField(8 * 1),
				bitlookupField("Discrete Status 1", 8*2, "ENGINE_STATUS_1"),
				bitlookupField("Discrete Status 2", 8*2, "ENGINE_STATUS_2"),
				percentageI8Field("Engine Load"),
				percentageI8Field("Engine Torque"),
			}),
			Interval: 500,
		},

		{
			Description: "Transmission Parameters, Dynamic",
			PGN:         127493,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("Instance", 8*1, "ENGINE_INSTANCE"),
				lookupField("Transmission Gear", 2, "GEAR_STATUS"),
				reservedField(6),
				pressureUfix16HPAField("Oil pressure"),
				temperatureHighField("Oil temperature"),
				uint8Field("Discrete Status 1"),
				reservedField(8 * 1),
			}),
			Interval: 100,
		},

		{
			Description: "DC Detailed Status",
			PGN:         127506,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				instanceField(),
				lookupField("DC Type", 8*1, "DC_SOURCE"),
				percentageU8Field("State of Charge"),
				percentageU8Field("State of Health"),
				timeUfix16MinField("Time Remaining", "Time remaining at current rate of discharge"),
				voltageU1610mvField("Ripple Voltage"),
				electricChargeUfix16Ah("Remaining capacity"),
			}),
			Interval: 1500,
		},

		{
			Description: "Battery Status",
			PGN:         127508,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				instanceField(),
				voltageU1610mvField("Voltage"),
				currentFix16DaField("Current"),
				temperatureField("Temperature"),
				uint8Field("SID"),
			}),
			Interval: 1500,
		},

		{
			Description: "Speed",
			PGN:         128259,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				speedU16CmField("Speed Water Referenced"),
				speedU16CmField("Speed Ground Referenced"),
				lookupField("Speed Water Referenced Type", 8*1, "WATER_REFERENCE"),
				simpleField("Speed Direction", 4),
				reservedField(12),
			}),
			Interval: 1000,
		},

		{
			Description: "Water Depth",
			PGN:         128267,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				lengthUfix32CmField("Depth", "Depth below transducer"),
				distanceFix16MmField("Offset", "Distance between transducer and surface (positive) or keel (negative)"),
				lengthUfix8DamField("Range", "Max measurement range"),
			}),
			Interval: 1000,
		},

		{
			Description: "Distance Log",
			PGN:         128275,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				dateField("Date"),
				timeField("Time"),
				lengthUfix32MField("Log", "Total cumulative distance"),
				lengthUfix32MField("Trip Log", "Distance since last reset"),
			}),
			Interval: 1000,
		},

		{
			Description: "Position, Rapid Update",
			PGN:         129025,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				latitudeI32Field("Latitude"),
				longitudeI32Field("Longitude"),
			}),
			Interval: 100,
		},

		{
			Description: "COG & SOG, Rapid Update",
			PGN:         129026,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				lookupField("COG Reference", 2, "DIRECTION_REFERENCE"),
				reservedField(6),
				angleU16Field("COG", ""),
				speedU16CmField("SOG"),
				reservedField(8 * 2),
			}),
			Interval: 250,
		},

		{
			Description: "GNSS Position Data",
			PGN:         129029,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				dateField("Date"),
				timeField("Time"),
				latitudeI64Field("Latitude"),
				longitudeI64Field("Longitude"),
				distanceFix64Field("Altitude", "Altitude referenced to WGS-84"),
				lookupField("GNSS type", 4, "GNS"),
				lookupField("Method", 4, "GNS_METHOD"),
				lookupField("Integrity", 2, "GNS_INTEGRITY"),
				reservedField(6),
				uint8Field("Number of SVs"),
				dilutionOfPrecisionFix16Field("HDOP", "Horizontal dilution of precision"),
				dilutionOfPrecisionFix16Field("PDOP", "Positional dilution of precision"),
				distanceFix32CmField("Geoidal Separation", "Geoidal Separation"),
				simpleDescField("Reference Stations", 8*1, "Number of reference stations"),
				lookupField("Reference Station Type", 4, "GNS"),
				simpleField("Reference Station ID", 12),
				timeUfix16CsField("Age of DGNSS Corrections", ""),
			}),
			Interval:        1000,
			RepeatingCount1: 3,
			RepeatingStart1: 16,
			RepeatingField1: 15,
		},

		{
			Description: "GNSS Sats in View",
			PGN:         129540,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				lookupField("Range Residual Mode", 2, "RANGE_RESIDUAL_MODE"),
				reservedField(6),
				uint8Field("Sats in View"),
				uint8Field("PRN"),
				angleI16Field("Elevation", ""),
				angleU16Field("Azimuth", ""),
				signaltonoiseratioUfix16Field("SNR", ""),
				simpleSignedField("Range residuals", 8*4),
				lookupField("Status", 4, "SATELLITE_STATUS"),
				reservedField(4),
			}),
			Interval:        1000,
			RepeatingCount1: 7,
			RepeatingStart1: 5,
			RepeatingField1: 4,
		},

		{
			Description: "AIS Class B static data (msg 24 Part A)",
			PGN:         129809,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				simpleDescField("Message ID", 6, "AIS message ID"),
				lookupField("Repeat Indicator", 2, "REPEAT_INDICATOR"),
				mmsiField("User ID"),
				stringFixField("Name", 8*20),
			}),
			Interval: math.MaxUint16,
		},

		{
			Description: "Wind Data",
			PGN:         130306,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				speedU16CmField("Wind Speed"),
				angleU16Field("Wind Angle", ""),
				lookupField("Reference", 3, "WIND_REFERENCE"),
				reservedField(21),
			}),
			Interval: 100,
		},

		{
			Description: "Environmental Parameters (obsolete)",
			PGN:         130310,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				temperatureField("Water Temperature"),
				temperatureField("Outside Ambient Air Temperature"),
				pressureUfix16HPAField("Atmospheric Pressure"),
				reservedField(8 * 1),
			}),
			Interval:    500,
			Explanation: "This PGN was succeeded by PGN 130311, but it should no longer be generated and separate PGNs in range 130312..130315 should be used.",
		},

		{
			Description: "Environmental Parameters",
			PGN:         130311,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				lookupField("Temperature Source", 6, "TEMPERATURE_SOURCE"),
				lookupField("Humidity Source", 2, "HUMIDITY_SOURCE"),
				temperatureField("Temperature"),
				percentageI16Field("Humidity"),
				pressureUfix16HPAField("Atmospheric Pressure"),
			}),
			Interval:    500,
			Explanation: "This PGN was introduced as a better version of PGN 130310, but it should no longer be generated and separate PGNs in range 130312..130315 should be used.",
		},

		{
			Description: "Temperature",
			PGN:         130312,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				instanceField(),
				lookupField("Source", 8*1, "TEMPERATURE_SOURCE"),
				temperatureField("Actual Temperature"),
				temperatureField("Set Temperature"),
				reservedField(8 * 1),
			}),
			Interval: 2000,
		},

		{
			Description: "Humidity",
			PGN:         130313,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				instanceField(),
				lookupField("Source", 8*1, "HUMIDITY_SOURCE"),
				percentageI16Field("Actual Humidity"),
				percentageI16Field("Set Humidity"),
				reservedField(8 * 1),
			}),
			Interval: 2000,
		},

		{
			Description: "Actual Pressure",
			PGN:         130314,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				instanceField(),
				lookupField("Source", 8*1, "PRESSURE_SOURCE"),
				pressureFix32DpaField("Pressure"),
				reservedField(8 * 1),
			}),
			Interval: 2000,
		},

		{
			Description: "Temperature Extended Range",
			PGN:         130316,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeSingle,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				instanceField(),
				lookupField("Source", 8*1, "TEMPERATURE_SOURCE"),
				temperatureU24Field("Temperature"),
				temperatureHighField("Set Temperature"),
			}),
			Interval: 2000,
		},

		{
			Description: "0x1FF00-0x1FFFF: Manufacturer Proprietary fast-packet non-addressed",
			PGN:         0x1ff00,
			Complete:    PacketStatusIncompleteLookup,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed(append(manufacturerFields(),
				binaryField("Data", 8*(common.FastPacketMaxSize-2), ""))),
			Fallback: true,
			Explanation: "Manufacturer proprietary PGNs in PDU2 (non-addressed) fast-packet PGN range 0x1FF00 to 0x1FFFF (130816 - 131071). " +
				"When this is shown during analysis it means the PGN is not reverse engineered yet.",
		},

		{
			Description: "B&G: key-value data",
			PGN:         130824,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed(append(company("381"),
				lookupFieldtypeField("Key", 12, "DEVICE_TELEMETRY"),
				simpleDescField("Length", 4, "Length of field 6"),
				keyValueField("Value", "Data value"),
			)),
			Interval:        1000,
			RepeatingCount1: 3,
			RepeatingStart1: 4,
			RepeatingField1: 255,
			Explanation:     "Contains any number of key/value pairs, sent by various B&G devices such as MFDs and Sailing Processors.",
		},

		{
			Description: "Actisense: Operating mode",
			PGN:         common.ActisenseBEM + 0x11,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				uint16Field("Model ID"),
				uint32Field("Serial ID"),
				uint32Field("Error ID"),
				uint16Field("Operating Mode"),
			}),
		},

		{
			Description: "Actisense: Startup status",
			PGN:         common.ActisenseBEM + 0xf2,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("SID"),
				uint16Field("Model ID"),
				uint32Field("Serial ID"),
				uint32Field("Error ID"),
				versionField("Firmware version"),
				uint8Field("Reset status"),
				uint8Field("A"),
			}),
		},

		{
			Description: "iKonvert: Network status",
			PGN:         common.IKonvertBEM,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				uint8Field("CAN network load"),
				uint32Field("Errors"),
				uint8Field("Device count"),
				timeUfix32SField("Uptime", ""),
				uint8Field("Gateway address"),
				uint32Field("Rejected TX requests"),
			}),
		},

		{
			Description: "iKonvert: Device status",
			PGN:         common.IKonvertBEM + 1,
			Complete:    PacketStatusComplete,
			PacketType:  PacketTypeFast,
			FieldList: varLenFieldListToFixed([]PGNField{
				lookupField("State", 8*1, "IKONVERT_STATE"),
				uint8Field("Firmware major"),
				uint8Field("Firmware minor"),
			}),
		},
	}
}
