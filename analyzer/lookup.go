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

// LookupType is the kind of enumeration a lookup field carries.
type LookupType byte

// The lookup kinds.
const (
	LookupTypeNone LookupType = iota
	LookupTypePair
	LookupTypeTriplet
	LookupTypeBit
	LookupTypeFieldType
)

// LookupInfo describes how to translate a field's raw number into a name,
// and back again when marshaling.
type LookupInfo struct {
	Name                   string
	LookupType             LookupType
	Size                   int
	FunctionPair           func(val int) string
	FunctionPairReverse    func(name string) int
	FunctionTriplet        func(val1, val2 int) string
	FunctionTripletReverse func(name string) (int, int)
	Val1Order              uint8 // for Triplet lookups, the field order carrying val1
}

// fieldTypeLookupEntry describes one key of a FIELDTYPE_LOOKUP enumeration:
// the key selects both the name and the field type of the value that follows.
type fieldTypeLookupEntry struct {
	name      string
	fieldType string
	size      uint32
}

var (
	lookupFunctionPairForTyp           = map[string]func(val int) string{}
	lookupFunctionPairReverseForTyp    = map[string]func(name string) int{}
	lookupFunctionTripletForTyp        = map[string]func(val1, val2 int) string{}
	lookupFunctionTripletReverseForTyp = map[string]func(name string) (int, int){}
)

var lookupPairs = map[string]map[int]string{
	"MANUFACTURER_CODE": {
		69:   "ARKS Enterprises, Inc.",
		78:   "FW Murphy/Enovation Controls",
		80:   "Twin Disc",
		85:   "Kohler Power Systems",
		88:   "Hemisphere GPS Inc",
		116:  "BEP Marine",
		135:  "Airmar",
		137:  "Maretron",
		140:  "Lowrance",
		144:  "Mercury Marine",
		147:  "Nautibus Electronic GmbH",
		154:  "Blue Water Data",
		161:  "Westerbeke",
		168:  "Evinrude/BRP",
		172:  "CPAC Systems AB",
		174:  "Xantrex Technology Inc.",
		176:  "Carling Technologies Inc. (Moritz Aerospace)",
		185:  "Beede Instruments",
		192:  "Floscan Instrument Co. Inc.",
		193:  "Nobletec",
		198:  "Mystic Valley Communications",
		199:  "Actia",
		215:  "Aetna Engineering/Fireboy-Xintex",
		224:  "EMMI NETWORK S.L.",
		225:  "Zf",
		229:  "Garmin",
		233:  "Yacht Monitoring Solutions",
		235:  "Sailormade Marine Telemetry/Tetra Technology LTD",
		243:  "Eride",
		257:  "Honda Motor Company LTD",
		272:  "Groco",
		273:  "Actisense",
		274:  "Amphenol LTW Technology",
		275:  "Navico",
		283:  "Hamilton Jet",
		285:  "Sea Recovery",
		286:  "Coelmo SRL Italy",
		304:  "Empir Bus",
		305:  "Novatel",
		306:  "Sleipner Motor AS",
		307:  "MBW Technologies",
		311:  "Fischer Panda",
		315:  "ICOM",
		328:  "Qwerty",
		329:  "Dief",
		341:  "Boening Automationstechnologie GmbH & Co. KG",
		345:  "Korean Maritime University",
		351:  "Thrane and Thrane",
		355:  "Mastervolt",
		356:  "Fischer Panda Generators",
		358:  "Victron Energy",
		370:  "Rolls Royce Marine",
		373:  "Electronic Design",
		374:  "Northern Lights",
		378:  "Glendinning",
		381:  "B & G",
		384:  "Rose Point Navigation Systems",
		385:  "Johnson Outdoors Marine Electronics Inc Geonav",
		394:  "Capi 2",
		396:  "Beyond Measure",
		400:  "Livorsi Marine",
		404:  "ComNav",
		409:  "Chetco",
		419:  "Fusion Electronics",
		421:  "Standard Horizon",
		422:  "True Heading AB",
		426:  "Egersund Marine Electronics AS",
		427:  "em-trak Marine Electronics",
		431:  "Tohatsu Co, JP",
		437:  "Digital Yacht",
		438:  "Comar Systems Limited",
		440:  "Cummins",
		443:  "VDO (aka Continental-Corporation)",
		451:  "Parker Hannifin aka Village Marine Tech",
		459:  "Alltek Marine Electronics Corp",
		460:  "SAN GIORGIO S.E.I.N",
		466:  "Veethree Electronics & Marine",
		470:  "Humminbird Marine Electronics",
		471:  "SI-TEX Marine Electronics",
		475:  "Sea Cross Marine AB",
		481:  "GME aka Standard Communications Pty LTD",
		493:  "Ocean Sat BV",
		499:  "Chetco Digitial Instruments",
		502:  "Watcheye",
		509:  "Lcj Capteurs",
		517:  "Attwood Marine",
		518:  "Naviop S.R.L.",
		529:  "Vesper Marine Ltd",
		532:  "Marinesoft Co. LTD",
		571:  "Marinecraft (South Korea)",
		573:  "McMurdo Group aka Orolia LTD",
		578:  "Advansea",
		579:  "KVH",
		580:  "San Jose Technology",
		583:  "Yacht Control",
		586:  "Suzuki Motor Corporation",
		591:  "US Coast Guard",
		595:  "Ship Module aka Customware",
		600:  "Aquatic AV",
		605:  "Aventics GmbH",
		606:  "Intellian",
		612:  "SamwonIT",
		614:  "Arlt Tecnologies",
		637:  "Bavaria Yachts",
		641:  "Diverse Yacht Services",
		644:  "Wema U.S.A dba KUS",
		645:  "Garmin",
		658:  "Shenzhen Jiuzhou Himunication",
		688:  "Rockford Corp",
		704:  "JL Audio",
		715:  "Autonnic",
		717:  "Yacht Devices",
		734:  "REAP Systems",
		735:  "Au Electronics Group",
		739:  "LxNav",
		743:  "Littelfuse, Inc (formerly Carling Technologies)",
		744:  "DaeMyung",
		773:  "Woosung",
		776:  "ISOTTA IFRA srl",
		777:  "Clarion US",
		786:  "HMI Systems",
		793:  "Ocean Signal",
		795:  "Seekeeper",
		796:  "Poly Planar",
		799:  "Fischer Panda DE",
		802:  "Broyda Industries",
		803:  "Canadian Automotive",
		804:  "Tides Marine",
		805:  "Lumishore",
		806:  "Still Water Designs and Audio",
		810:  "BJ Technologies (Beneteau)",
		811:  "Gill Sensors",
		824:  "Blue Water Desalination",
		838:  "Flir",
		844:  "Undheim Systems",
		847:  "Lewmar Inc",
		862:  "TeamSurv",
		868:  "Fell Marine",
		875:  "Oceanvolt",
		890:  "Prospec",
		896:  "Data Panel Corp",
		905:  "L3 Technologies",
		909:  "Rhodan Marine Systems",
		911:  "Nexfour Solutions",
		930:  "ASA Electronics",
		962:  "Timbolier Industries",
		963:  "Cox Powertrain",
		968:  "Blue Seas",
		1850: "Teleflex Marine (SeaStar Solutions)",
		1851: "Raymarine",
		1852: "Navionics",
		1853: "Japan Radio Co",
		1854: "Northstar Technologies",
		1855: "Furuno",
		1856: "Trimble",
		1857: "Simrad",
		1858: "Litton",
		1859: "Kvasar AB",
		1860: "MMP",
		1861: "Vector Cantech",
		1862: "Yamaha Marine",
		1863: "Faria Instruments",
	},
	"INDUSTRY_CODE": {
		0: "Global",
		1: "Highway",
		2: "Agriculture",
		3: "Construction",
		4: "Marine Industry",
		5: "Industrial",
	},
	"ISO_ACKNOWLEDGEMENT": {
		0: "ACK",
		1: "NAK",
		2: "Access Denied",
		3: "Address Busy",
	},
	"DEVICE_CLASS": {
		0:   "Reserved for 2000 Use",
		10:  "System tools",
		20:  "Safety systems",
		25:  "Internetwork device",
		30:  "Electrical Distribution",
		35:  "Electrical Generation",
		40:  "Steering and Control surfaces",
		50:  "Propulsion",
		60:  "Navigation",
		70:  "Communication",
		75:  "Sensor Communication Interface",
		80:  "Instrumentation/general systems",
		85:  "External Environment",
		90:  "Internal Environment",
		100: "Deck + cargo + fishing equipment systems",
		110: "Human Interface",
		120: "Display",
		125: "Entertainment",
	},
	"SYSTEM_TIME": {
		0: "GPS",
		1: "GLONASS",
		2: "Radio Station",
		3: "Local Cesium clock",
		4: "Local Rubidium clock",
		5: "Local Crystal clock",
	},
	"DIRECTION_REFERENCE": {
		0: "True",
		1: "Magnetic",
		2: "Error",
	},
	"DIRECTION_RUDDER": {
		0: "No Order",
		1: "Move to starboard",
		2: "Move to port",
	},
	"GNS": {
		0: "GPS",
		1: "GLONASS",
		2: "GPS+GLONASS",
		3: "GPS+SBAS/WAAS",
		4: "GPS+SBAS/WAAS+GLONASS",
		5: "Chayka",
		6: "integrated",
		7: "surveyed",
		8: "Galileo",
	},
	"GNS_METHOD": {
		0: "no GNSS",
		1: "GNSS fix",
		2: "DGNSS fix",
		3: "Precise GNSS",
		4: "RTK Fixed Integer",
		5: "RTK float",
		6: "Estimated (DR) mode",
		7: "Manual Input",
		8: "Simulate mode",
	},
	"GNS_INTEGRITY": {
		0: "No integrity checking",
		1: "Safe",
		2: "Caution",
	},
	"RANGE_RESIDUAL_MODE": {
		0: "Range residuals were used to calculate data",
		1: "Range residuals were calculated after the position",
	},
	"SATELLITE_STATUS": {
		0: "Not tracked",
		1: "Tracked",
		2: "Used",
		3: "Not tracked+Diff",
		4: "Tracked+Diff",
		5: "Used+Diff",
	},
	"TEMPERATURE_SOURCE": {
		0:  "Sea Temperature",
		1:  "Outside Temperature",
		2:  "Inside Temperature",
		3:  "Engine Room Temperature",
		4:  "Main Cabin Temperature",
		5:  "Live Well Temperature",
		6:  "Bait Well Temperature",
		7:  "Refrigeration Temperature",
		8:  "Heating System Temperature",
		9:  "Dew Point Temperature",
		10: "Apparent Wind Chill Temperature",
		11: "Theoretical Wind Chill Temperature",
		12: "Heat Index Temperature",
		13: "Freezer Temperature",
		14: "Exhaust Gas Temperature",
		15: "Shaft Seal Temperature",
	},
	"HUMIDITY_SOURCE": {
		0: "Inside",
		1: "Outside",
	},
	"PRESSURE_SOURCE": {
		0: "Atmospheric",
		1: "Water",
		2: "Steam",
		3: "Compressed Air",
		4: "Hydraulic",
		5: "Filter",
		6: "AltimeterSetting",
		7: "Oil",
		8: "Fuel",
	},
	"WATER_REFERENCE": {
		0: "Paddle wheel",
		1: "Pitot tube",
		2: "Doppler",
		3: "Correlation (ultra sound)",
		4: "Electro Magnetic",
	},
	"WIND_REFERENCE": {
		0: "True (ground referenced to North)",
		1: "Magnetic (referenced to magnetic North)",
		2: "Apparent",
		3: "True (boat referenced)",
		4: "True (water referenced)",
	},
	"YES_NO": {
		0: "No",
		1: "Yes",
	},
	"OFF_ON": {
		0: "Off",
		1: "On",
	},
	"REPEAT_INDICATOR": {
		0: "Initial",
		1: "First retransmission",
		2: "Second retransmission",
		3: "Final retransmission",
	},
	"MAGNETIC_VARIATION": {
		0: "Manual",
		1: "Automatic Chart",
		2: "Automatic Table",
		3: "Automatic Calculation",
		4: "WMM 2000",
		5: "WMM 2005",
		6: "WMM 2010",
		7: "WMM 2015",
		8: "WMM 2020",
	},
	"DC_SOURCE": {
		0: "Battery",
		1: "Alternator",
		2: "Convertor",
		3: "Solar cell",
		4: "Wind generator",
	},
	"BATTERY_CHEMISTRY": {
		0: "Pb (Lead)",
		1: "Li",
		2: "NiCd",
		3: "ZnO",
		4: "NiMH",
	},
	"TIME_STAMP": {
		60: "Not available",
		61: "Manual input mode",
		62: "Dead reckoning mode",
		63: "Positioning system is inoperative",
	},
	"ENGINE_INSTANCE": {
		0: "Single Engine or Dual Engine Port",
		1: "Dual Engine Starboard",
	},
	"ENGINE_STATUS_1": {
		0:  "Check Engine",
		1:  "Over Temperature",
		2:  "Low Oil Pressure",
		3:  "Low Oil Level",
		4:  "Low Fuel Pressure",
		5:  "Low System Voltage",
		6:  "Low Coolant Level",
		7:  "Water Flow",
		8:  "Water In Fuel",
		9:  "Charge Indicator",
		10: "Preheat Indicator",
		11: "High Boost Pressure",
		12: "Rev Limit Exceeded",
		13: "EGR System",
		14: "Throttle Position Sensor",
		15: "Emergency Stop",
	},
	"ENGINE_STATUS_2": {
		0: "Warning Level 1",
		1: "Warning Level 2",
		2: "Power Reduction",
		3: "Maintenance Needed",
		4: "Engine Comm Error",
		5: "Sub or Secondary Throttle",
		6: "Neutral Start Protect",
		7: "Engine Shutting Down",
	},
	"GEAR_STATUS": {
		0: "Forward",
		1: "Neutral",
		2: "Reverse",
	},
	"PGN_LIST_FUNCTION": {
		0: "Transmit PGN list",
		1: "Receive PGN list",
	},
	"RAIM_FLAG": {
		0: "not in use",
		1: "in use",
	},
	"IKONVERT_STATE": {
		0: "Running",
		1: "Init",
	},
	"GROUP_FUNCTION": {
		0: "Request",
		1: "Command",
		2: "Acknowledge",
		3: "Read Fields",
		4: "Read Fields Reply",
		5: "Write Fields",
		6: "Write Fields Reply",
	},
	"PRIORITY": {
		0: "0",
		1: "1",
		2: "2",
		3: "3",
		4: "4",
		5: "5",
		6: "6",
		7: "7",
		8: "Leave unchanged",
		9: "Reset to default",
	},
}

// lookupTriplets maps (val1, val2) pairs to names. DEVICE_FUNCTION is keyed
// by the Device Class value followed by the function number.
var lookupTriplets = map[string]map[int]map[int]string{
	"DEVICE_FUNCTION": {
		10: {
			130: "Diagnostic",
			140: "Bus Traffic Logger",
		},
		20: {
			110: "Alarm Enunciator",
			130: "Emergency Position Indicating Radio Beacon (EPIRB)",
			135: "Man Overboard",
			140: "Voyage Data Recorder",
			150: "Camera",
		},
		25: {
			130: "PC Gateway",
			131: "NMEA 2000 to Analog Gateway",
			132: "Analog to NMEA 2000 Gateway",
			133: "NMEA 2000 to Serial Gateway",
			135: "NMEA 0183 Gateway",
			136: "NMEA Network Gateway",
			137: "NMEA 2000 Wireless Gateway",
			140: "Router",
			150: "Bridge",
			160: "Repeater",
		},
		30: {
			130: "Binary Event Monitor",
			140: "Load Controller",
			141: "AC/DC Input",
			150: "Function Controller",
		},
		35: {
			140: "Engine",
			141: "DC Generator/Alternator",
			142: "Solar Panel (Solar Array)",
			143: "Wind Generator (DC)",
			144: "Fuel Cell",
			145: "Network Power Supply",
			151: "AC Generator",
			152: "AC Bus",
			153: "AC Mains (Utility/Shore)",
			154: "AC Output",
			160: "Power Converter - Battery Charger",
			161: "Power Converter - Battery Charger+Inverter",
			162: "Power Converter - Inverter",
			163: "Power Converter - DC",
			170: "Battery",
			180: "Engine Gateway",
		},
		40: {
			130: "Follow-up Controller",
			140: "Mode Controller",
			150: "Autopilot",
			155: "Rudder",
			160: "Heading Sensors",
			170: "Trim (Tabs)/Interceptors",
			180: "Attitude (Pitch, Roll, Yaw) Control",
		},
		50: {
			130: "Engineroom Monitoring",
			140: "Engine",
			141: "DC Generator/Alternator",
			150: "Engine Controller",
			151: "AC Generator",
			155: "Motor",
			160: "Engine Gateway",
			165: "Transmission",
			170: "Throttle/Shift Control",
			180: "Actuator",
			190: "Gauge Interface",
			200: "Gauge Large",
			210: "Gauge Small",
		},
		60: {
			130: "Bottom Depth",
			135: "Bottom Depth/Speed",
			136: "Bottom Depth/Speed/Temperature",
			140: "Ownship Attitude",
			145: "Ownship Position (GNSS)",
			150: "Ownship Position (Loran C)",
			155: "Speed",
			160: "Turn Rate Indicator",
			170: "Integrated Navigation",
			175: "Integrated Navigation System",
			190: "Navigation Management",
			195: "Automatic Identification System (AIS)",
			200: "Radar",
			201: "Infrared Imaging",
			205: "ECDIS",
			210: "ECS",
			220: "Direction Finder",
			230: "Voyage Status",
		},
		70: {
			130: "EPIRB",
			140: "AIS",
			150: "DSC",
			160: "Data Receiver/Transceiver",
			170: "Satellite",
			180: "Radio-telephone (MF/HF)",
			190: "Radiotelephone",
		},
		75: {
			130: "Temperature",
			140: "Pressure",
			150: "Fluid Level",
			160: "Flow",
			170: "Humidity",
		},
		80: {
			130: "Time/Date Systems",
			140: "VDR",
			150: "Integrated Instrumentation",
			160: "General Purpose Displays",
			170: "General Sensor Box",
			180: "Weather Instruments",
			190: "Transducer/General",
			200: "NMEA 0183 Converter",
		},
		85: {
			130: "Atmospheric",
			160: "Aquatic",
		},
		90: {
			130: "HVAC",
		},
		100: {
			130: "Scale (Catch)",
		},
		110: {
			130: "Button Interface",
			135: "Switch Interface",
			140: "Analog Interface",
		},
		120: {
			130: "Display",
			140: "Alarm Enunciator",
		},
		125: {
			130: "Multimedia Player",
			140: "Multimedia Controller",
		},
	},
}

// lookupFieldTypes back the FIELDTYPE_LOOKUP fields used by key/value PGNs:
// the key selects the name and field type of the value that follows it.
var lookupFieldTypes = map[string]map[int]fieldTypeLookupEntry{
	"DEVICE_TELEMETRY": {
		1: {name: "Supply Voltage", fieldType: "VOLTAGE_UFIX16_10MV", size: 16},
		2: {name: "Temperature", fieldType: "TEMPERATURE", size: 16},
		3: {name: "Operating Time", fieldType: "TIME_UFIX32_S", size: 32},
		4: {name: "Status", fieldType: "UINT8", size: 8},
	},
}

func initLookupTypes() {
	for typ, pairs := range lookupPairs {
		pairs := pairs
		lookupFunctionPairForTyp[typ] = func(val int) string {
			return pairs[val]
		}
		lookupFunctionPairReverseForTyp[typ] = func(name string) int {
			for val, str := range pairs {
				if str == name {
					return val
				}
			}
			return -1
		}
	}
	for typ, triplets := range lookupTriplets {
		triplets := triplets
		lookupFunctionTripletForTyp[typ] = func(val1, val2 int) string {
			return triplets[val1][val2]
		}
		lookupFunctionTripletReverseForTyp[typ] = func(name string) (int, int) {
			for val1, pairs := range triplets {
				for val2, str := range pairs {
					if str == name {
						return val1, val2
					}
				}
			}
			return -1, -1
		}
	}
	for typ, entries := range lookupFieldTypes {
		entries := entries
		lookupFunctionPairForTyp[typ] = func(val int) string {
			return entries[val].name
		}
		lookupFunctionPairReverseForTyp[typ] = func(name string) int {
			for val, entry := range entries {
				if entry.name == name {
					return val
				}
			}
			return -1
		}
	}
}

// lookupFieldTypeEntry resolves a FIELDTYPE_LOOKUP key to the entry that
// describes the value field following it, or nil when the key is unknown.
func lookupFieldTypeEntry(typ string, key int) *fieldTypeLookupEntry {
	entries, ok := lookupFieldTypes[typ]
	if !ok {
		return nil
	}
	entry, ok := entries[key]
	if !ok {
		return nil
	}
	return &entry
}
