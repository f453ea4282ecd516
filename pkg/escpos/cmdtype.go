// pkg/escpos/cmdtype.go
package escpos

// CommandType identifies the command a record holds. Types shared by the
// printer and the line display are told apart by Record.Device.
type CommandType string

// Text and single-byte controls
const (
	Printables   CommandType = "Printables"
	Displayables CommandType = "Displayables"
	// Controls is any single control byte without a defined meaning.
	Controls CommandType = "Controls"
	// Unknown holds an incomplete trailing command.
	Unknown CommandType = "Unknown"

	PrintAndLineFeed               CommandType = "PrintAndLineFeed"
	PrintAndCarriageReturn         CommandType = "PrintAndCarriageReturn"
	PrintAndCarriageReturnLineFeed CommandType = "PrintAndCarriageReturnLineFeed"
	HorizontalTab                  CommandType = "HorizontalTab"
	PrintAndReturnStandardMode     CommandType = "PrintAndReturnStandardMode"
	CancelPrintDataPageMode        CommandType = "CancelPrintDataPageMode"

	DleTransmitRealtimeStatus  CommandType = "DleTransmitRealtimeStatus"
	DleSendRealtimeRequest     CommandType = "DleSendRealtimeRequest"
	DleGeneratePulseRealtime   CommandType = "DleGeneratePulseRealtime"
	DleExecutePowerOff         CommandType = "DleExecutePowerOff"
	DleSoundBuzzerRealtime     CommandType = "DleSoundBuzzerRealtime"
	DleTransmitSpecifiedStatus CommandType = "DleTransmitSpecifiedStatus"
	DleClearBuffer             CommandType = "DleClearBuffer"
	DisplayMoveCursorLeft      CommandType = "DisplayMoveCursorLeft"
	DisplayMoveCursorRight     CommandType = "DisplayMoveCursorRight"
	DisplayMoveCursorDown      CommandType = "DisplayMoveCursorDown"
	DisplayMoveCursorHome      CommandType = "DisplayMoveCursorHome"
	DisplayClearScreen         CommandType = "DisplayClearScreen"
	DisplayMoveCursorLeftMost  CommandType = "DisplayMoveCursorLeftMost"
	DisplayClearCursorLine     CommandType = "DisplayClearCursorLine"
)

// ESC
const (
	EscUnknown                           CommandType = "EscUnknown"
	EscPrintDataInPageMode               CommandType = "EscPrintDataInPageMode"
	EscRightSideCharacterSpacing         CommandType = "EscRightSideCharacterSpacing"
	EscSelectPrintMode                   CommandType = "EscSelectPrintMode"
	EscSetAbsolutePrintPosition          CommandType = "EscSetAbsolutePrintPosition"
	EscSelectUserDefinedCharacterSet     CommandType = "EscSelectUserDefinedCharacterSet"
	EscDefineUserDefinedCharacters1224   CommandType = "EscDefineUserDefinedCharacters1224"
	EscDefineUserDefinedCharacters1024   CommandType = "EscDefineUserDefinedCharacters1024"
	EscDefineUserDefinedCharacters0924   CommandType = "EscDefineUserDefinedCharacters0924"
	EscDefineUserDefinedCharacters0917   CommandType = "EscDefineUserDefinedCharacters0917"
	EscDefineUserDefinedCharacters0909   CommandType = "EscDefineUserDefinedCharacters0909"
	EscDefineUserDefinedCharacters0709   CommandType = "EscDefineUserDefinedCharacters0709"
	EscDefineUserDefinedCharacters0816   CommandType = "EscDefineUserDefinedCharacters0816"
	EscDefineUserDefinedCharacters0507   CommandType = "EscDefineUserDefinedCharacters0507"
	EscBeeperBuzzer                      CommandType = "EscBeeperBuzzer"
	EscBeeperBuzzerM1a                   CommandType = "EscBeeperBuzzerM1a"
	EscBeeperBuzzerM1b                   CommandType = "EscBeeperBuzzerM1b"
	EscBeeperBuzzerOffline               CommandType = "EscBeeperBuzzerOffline"
	EscBeeperBuzzerNearEnd               CommandType = "EscBeeperBuzzerNearEnd"
	EscSpecifyBatchPrint                 CommandType = "EscSpecifyBatchPrint"
	EscSelectBitImageMode                CommandType = "EscSelectBitImageMode"
	EscUnderlineMode                     CommandType = "EscUnderlineMode"
	EscSelectDefaultLineSpacing          CommandType = "EscSelectDefaultLineSpacing"
	EscSetLineSpacing                    CommandType = "EscSetLineSpacing"
	EscReturnHome                        CommandType = "EscReturnHome"
	EscSelectPeripheralDevice            CommandType = "EscSelectPeripheralDevice"
	EscCancelUserDefinedCharacters       CommandType = "EscCancelUserDefinedCharacters"
	EscInitialize                        CommandType = "EscInitialize"
	EscHorizontalTabPosition             CommandType = "EscHorizontalTabPosition"
	EscTurnEmphasizedMode                CommandType = "EscTurnEmphasizedMode"
	EscTurnDoubleStrikeMode              CommandType = "EscTurnDoubleStrikeMode"
	EscPrintAndFeedPaper                 CommandType = "EscPrintAndFeedPaper"
	EscPrintAndReverseFeed               CommandType = "EscPrintAndReverseFeed"
	EscSelectPageMode                    CommandType = "EscSelectPageMode"
	EscSelectCharacterFont               CommandType = "EscSelectCharacterFont"
	EscSelectInternationalCharacterSet   CommandType = "EscSelectInternationalCharacterSet"
	EscSelectStandardMode                CommandType = "EscSelectStandardMode"
	EscSelectPrintDirection              CommandType = "EscSelectPrintDirection"
	EscTurnUnidirectionalPrintMode       CommandType = "EscTurnUnidirectionalPrintMode"
	EscTurn90ClockwiseRotationMode       CommandType = "EscTurn90ClockwiseRotationMode"
	EscSetPrintAreaInPageMode            CommandType = "EscSetPrintAreaInPageMode"
	EscSetRelativePrintPosition          CommandType = "EscSetRelativePrintPosition"
	EscSelectJustification               CommandType = "EscSelectJustification"
	EscSelectPaperTypesPrinting          CommandType = "EscSelectPaperTypesPrinting"
	EscSelectPaperTypesCommandSettings   CommandType = "EscSelectPaperTypesCommandSettings"
	EscSelectPaperSensorsPaperEndSignals CommandType = "EscSelectPaperSensorsPaperEndSignals"
	EscSelectPaperSensorsStopPrinting    CommandType = "EscSelectPaperSensorsStopPrinting"
	EscEnableDisablePanelButtons         CommandType = "EscEnableDisablePanelButtons"
	EscPrintAndFeedLines                 CommandType = "EscPrintAndFeedLines"
	EscPrintAndReverseFeedLines          CommandType = "EscPrintAndReverseFeedLines"
	EscCutSheetWaitTime                  CommandType = "EscCutSheetWaitTime"
	EscPartialCutOnePoint                CommandType = "EscPartialCutOnePoint"
	EscPartialCutThreePoint              CommandType = "EscPartialCutThreePoint"
	EscGeneratePulse                     CommandType = "EscGeneratePulse"
	EscSelectPrinterColor                CommandType = "EscSelectPrinterColor"
	EscSelectCharacterCodeTable          CommandType = "EscSelectCharacterCodeTable"
	EscTransmitPeripheralDeviceStatus    CommandType = "EscTransmitPeripheralDeviceStatus"
	EscTransmitPaperSensorStatus         CommandType = "EscTransmitPaperSensorStatus"
	EscTurnUpsideDownPrintMode           CommandType = "EscTurnUpsideDownPrintMode"
	DisplayCancelWindowArea              CommandType = "DisplayCancelWindowArea"
	DisplaySelectWindowArea              CommandType = "DisplaySelectWindowArea"
)

// FS
const (
	FsUnknown                                CommandType = "FsUnknown"
	FsSelectPrintModeKanji                   CommandType = "FsSelectPrintModeKanji"
	FsSelectKanjiMode                        CommandType = "FsSelectKanjiMode"
	FsCancelKanjiMode                        CommandType = "FsCancelKanjiMode"
	FsTurnKanjiUnderlineMode                 CommandType = "FsTurnKanjiUnderlineMode"
	FsDefineUserDefinedKanji2424             CommandType = "FsDefineUserDefinedKanji2424"
	FsDefineUserDefinedKanji1616             CommandType = "FsDefineUserDefinedKanji1616"
	FsCancelUserDefinedKanji                 CommandType = "FsCancelUserDefinedKanji"
	FsSelectKanjiCodeSystem                  CommandType = "FsSelectKanjiCodeSystem"
	FsSetKanjiCharacterSpacing               CommandType = "FsSetKanjiCharacterSpacing"
	FsTurnKanjiQuadrupleMode                 CommandType = "FsTurnKanjiQuadrupleMode"
	FsReadCheckPaper                         CommandType = "FsReadCheckPaper"
	FsLoadCheckPaper                         CommandType = "FsLoadCheckPaper"
	FsEjectCheckPaper                        CommandType = "FsEjectCheckPaper"
	FsWriteNVUserMemory                      CommandType = "FsWriteNVUserMemory"
	FsReadNVUserMemory                       CommandType = "FsReadNVUserMemory"
	FsPrintNVBitImage                        CommandType = "FsPrintNVBitImage"
	FsDefineNVBitImage                       CommandType = "FsDefineNVBitImage"
	FsSelectKanjiCharacterFont               CommandType = "FsSelectKanjiCharacterFont"
	FsSelectCharacterEncodeSystem            CommandType = "FsSelectCharacterEncodeSystem"
	FsSetFontPriority                        CommandType = "FsSetFontPriority"
	FsCancelSetValuesTopBottomLogo           CommandType = "FsCancelSetValuesTopBottomLogo"
	FsTransmitSetValuesTopBottomLogo         CommandType = "FsTransmitSetValuesTopBottomLogo"
	FsSetTopLogoPrinting                     CommandType = "FsSetTopLogoPrinting"
	FsSetBottomLogoPrinting                  CommandType = "FsSetBottomLogoPrinting"
	FsMakeExtendSettingsTopBottomLogo        CommandType = "FsMakeExtendSettingsTopBottomLogo"
	FsEnableDisableTopBottomLogo             CommandType = "FsEnableDisableTopBottomLogo"
	FsPaperLayoutSetting                     CommandType = "FsPaperLayoutSetting"
	FsPaperLayoutInformationTransmission     CommandType = "FsPaperLayoutInformationTransmission"
	FsTransmitPositioningInformation         CommandType = "FsTransmitPositioningInformation"
	FsFeedPaperLabelPeelingPosition          CommandType = "FsFeedPaperLabelPeelingPosition"
	FsFeedPaperCuttingPosition               CommandType = "FsFeedPaperCuttingPosition"
	FsFeedPaperPrintStartingPosition         CommandType = "FsFeedPaperPrintStartingPosition"
	FsPaperLayoutErrorSpecialMarginSetting   CommandType = "FsPaperLayoutErrorSpecialMarginSetting"
	FsEnableDisableAutomaticStatusBackOption CommandType = "FsEnableDisableAutomaticStatusBackOption"
	FsSelectMICRDataHandling                 CommandType = "FsSelectMICRDataHandling"
	FsSelectImageScannerCommandSettings      CommandType = "FsSelectImageScannerCommandSettings"
	FsSetBasicOperationOfImageScanner        CommandType = "FsSetBasicOperationOfImageScanner"
	FsSetScanningArea                        CommandType = "FsSetScanningArea"
	FsSelectCompressionMethodForImageData    CommandType = "FsSelectCompressionMethodForImageData"
	FsDeleteCroppingArea                     CommandType = "FsDeleteCroppingArea"
	FsSetCroppingArea                        CommandType = "FsSetCroppingArea"
	FsSelectTransmissionFormatForImage       CommandType = "FsSelectTransmissionFormatForImage"
)

// GS
const (
	GsUnknown                             CommandType = "GsUnknown"
	GsSelectCharacterSize                 CommandType = "GsSelectCharacterSize"
	GsSetAbsoluteVerticalPrintPosition    CommandType = "GsSetAbsoluteVerticalPrintPosition"
	GsDefineDownloadedBitImage            CommandType = "GsDefineDownloadedBitImage"
	GsPrintDownloadedBitImage             CommandType = "GsPrintDownloadedBitImage"
	GsStartEndMacroDefinition             CommandType = "GsStartEndMacroDefinition"
	GsTurnWhiteBlackReversePrintMode      CommandType = "GsTurnWhiteBlackReversePrintMode"
	GsSelectCounterPrintMode              CommandType = "GsSelectCounterPrintMode"
	GsSelectCounterModeA                  CommandType = "GsSelectCounterModeA"
	GsSetCounter                          CommandType = "GsSetCounter"
	GsSelectCounterModeB                  CommandType = "GsSelectCounterModeB"
	GsDefineWindowsBMPNVGraphics          CommandType = "GsDefineWindowsBMPNVGraphics"
	GsDefineWindowsBMPDownloadGraphics    CommandType = "GsDefineWindowsBMPDownloadGraphics"
	GsSelectHeadControlMethod             CommandType = "GsSelectHeadControlMethod"
	GsSelectPrintPositionHRI              CommandType = "GsSelectPrintPositionHRI"
	GsTransmitPrinterID                   CommandType = "GsTransmitPrinterID"
	GsSetLeftMargin                       CommandType = "GsSetLeftMargin"
	GsSetMotionUnits                      CommandType = "GsSetMotionUnits"
	GsPrintVariableVerticalSizeBitImage   CommandType = "GsPrintVariableVerticalSizeBitImage"
	GsSetPrintPositionBeginningOfLine     CommandType = "GsSetPrintPositionBeginningOfLine"
	GsPaperCut                            CommandType = "GsPaperCut"
	GsPaperFeedAndCut                     CommandType = "GsPaperFeedAndCut"
	GsSetPrintAreaWidth                   CommandType = "GsSetPrintAreaWidth"
	GsSetRelativeVerticalPrintPosition    CommandType = "GsSetRelativeVerticalPrintPosition"
	GsExecuteMacro                        CommandType = "GsExecuteMacro"
	GsEnableDisableAutomaticStatusBack    CommandType = "GsEnableDisableAutomaticStatusBack"
	GsTurnSmoothingMode                   CommandType = "GsTurnSmoothingMode"
	GsPrintCounter                        CommandType = "GsPrintCounter"
	GsSelectFontHRI                       CommandType = "GsSelectFontHRI"
	GsInitializeMaintenanceCounter        CommandType = "GsInitializeMaintenanceCounter"
	GsTransmitMaintenanceCounter          CommandType = "GsTransmitMaintenanceCounter"
	GsSetBarcodeHeight                    CommandType = "GsSetBarcodeHeight"
	GsEnableDisableAutomaticStatusBackInk CommandType = "GsEnableDisableAutomaticStatusBackInk"
	GsPrintBarcodeAsciiz                  CommandType = "GsPrintBarcodeAsciiz"
	GsPrintBarcodeSpecifiedLength         CommandType = "GsPrintBarcodeSpecifiedLength"
	GsTransmitStatus                      CommandType = "GsTransmitStatus"
	GsPrintRasterBitImage                 CommandType = "GsPrintRasterBitImage"
	GsSetBarcodeWidth                     CommandType = "GsSetBarcodeWidth"
	GsSetOnlineRecoveryWaitTime           CommandType = "GsSetOnlineRecoveryWaitTime"
	GsExecuteTestPrint                    CommandType = "GsExecuteTestPrint"
	GsCustomizeASBStatusBits              CommandType = "GsCustomizeASBStatusBits"
	GsDeleteSpecifiedRecord               CommandType = "GsDeleteSpecifiedRecord"
	GsStoreDataSpecifiedRecord            CommandType = "GsStoreDataSpecifiedRecord"
	GsTransmitDataSpecifiedRecord         CommandType = "GsTransmitDataSpecifiedRecord"
	GsEnableDisableRealtimeCommand        CommandType = "GsEnableDisableRealtimeCommand"
	GsChangeUserSettingMode               CommandType = "GsChangeUserSettingMode"
	GsEndUserSettingMode                  CommandType = "GsEndUserSettingMode"
	GsChangeMemorySwitch                  CommandType = "GsChangeMemorySwitch"
	GsTransmitSettingsMemorySwitch        CommandType = "GsTransmitSettingsMemorySwitch"
	GsSetCustomizeSettingValues           CommandType = "GsSetCustomizeSettingValues"
	GsTransmitCustomizeSettingValues      CommandType = "GsTransmitCustomizeSettingValues"
	GsCopyUserDefinedPage                 CommandType = "GsCopyUserDefinedPage"
	GsDefineColumnFormatCharacterCodePage CommandType = "GsDefineColumnFormatCharacterCodePage"
	GsDefineRasterFormatCharacterCodePage CommandType = "GsDefineRasterFormatCharacterCodePage"
	GsDeleteCharacterCodePage             CommandType = "GsDeleteCharacterCodePage"
	GsSetSerialInterface                  CommandType = "GsSetSerialInterface"
	GsTransmitSerialInterface             CommandType = "GsTransmitSerialInterface"
	GsSetBluetoothInterface               CommandType = "GsSetBluetoothInterface"
	GsTransmitBluetoothInterface          CommandType = "GsTransmitBluetoothInterface"
	GsSetUSBInterface                     CommandType = "GsSetUSBInterface"
	GsTransmitUSBInterface                CommandType = "GsTransmitUSBInterface"
	GsDeletePaperLayout                   CommandType = "GsDeletePaperLayout"
	GsSetPaperLayout                      CommandType = "GsSetPaperLayout"
	GsTransmitPaperLayout                 CommandType = "GsTransmitPaperLayout"
	GsSetInternalBuzzerPatterns           CommandType = "GsSetInternalBuzzerPatterns"
	GsTransmitInternalBuzzerPatterns      CommandType = "GsTransmitInternalBuzzerPatterns"
	GsSelectSideOfSlip                    CommandType = "GsSelectSideOfSlip"
	GsReadMagneticInkCharacter            CommandType = "GsReadMagneticInkCharacter"
	GsReadDataAndTransmitResult           CommandType = "GsReadDataAndTransmitResult"
	GsScanImageData                       CommandType = "GsScanImageData"
	GsRetransmitImageScanningResult       CommandType = "GsRetransmitImageScanningResult"
	GsDeleteImageScanningResult           CommandType = "GsDeleteImageScanningResult"
	GsSelectActiveSheet                   CommandType = "GsSelectActiveSheet"
	GsFinishProcessingOfCutSheet          CommandType = "GsFinishProcessingOfCutSheet"
	GsSpecifyProcessIDResponse            CommandType = "GsSpecifyProcessIDResponse"
	GsSpecifyOfflineResponse              CommandType = "GsSpecifyOfflineResponse"
	GsSelectPrintControlMode              CommandType = "GsSelectPrintControlMode"
	GsSelectPrintDensity                  CommandType = "GsSelectPrintDensity"
	GsSelectPrintSpeed                    CommandType = "GsSelectPrintSpeed"
	GsSelectThermalHeadEnergizing         CommandType = "GsSelectThermalHeadEnergizing"
	GsTransmitNVGraphicsMemoryCapacity    CommandType = "GsTransmitNVGraphicsMemoryCapacity"
	GsSetReferenceDotDensityGraphics      CommandType = "GsSetReferenceDotDensityGraphics"
	GsPrintGraphicsDataInPrintBuffer      CommandType = "GsPrintGraphicsDataInPrintBuffer"
	GsTransmitNVGraphicsRemainingCapacity CommandType = "GsTransmitNVGraphicsRemainingCapacity"
	GsTransmitDownloadRemainingCapacity   CommandType = "GsTransmitDownloadRemainingCapacity"
	GsTransmitKeyCodeListNVGraphics       CommandType = "GsTransmitKeyCodeListNVGraphics"
	GsDeleteAllNVGraphics                 CommandType = "GsDeleteAllNVGraphics"
	GsDeleteSpecifiedNVGraphics           CommandType = "GsDeleteSpecifiedNVGraphics"
	GsDefineNVGraphicsRaster              CommandType = "GsDefineNVGraphicsRaster"
	GsDefineNVGraphicsColumn              CommandType = "GsDefineNVGraphicsColumn"
	GsPrintSpecifiedNVGraphics            CommandType = "GsPrintSpecifiedNVGraphics"
	GsTransmitKeyCodeListDownloadGraphics CommandType = "GsTransmitKeyCodeListDownloadGraphics"
	GsDeleteAllDownloadGraphics           CommandType = "GsDeleteAllDownloadGraphics"
	GsDeleteSpecifiedDownloadGraphics     CommandType = "GsDeleteSpecifiedDownloadGraphics"
	GsDefineDownloadGraphicsRaster        CommandType = "GsDefineDownloadGraphicsRaster"
	GsDefineDownloadGraphicsColumn        CommandType = "GsDefineDownloadGraphicsColumn"
	GsPrintSpecifiedDownloadGraphics      CommandType = "GsPrintSpecifiedDownloadGraphics"
	GsStoreGraphicsInPrintBufferRaster    CommandType = "GsStoreGraphicsInPrintBufferRaster"
	GsStoreGraphicsInPrintBufferColumn    CommandType = "GsStoreGraphicsInPrintBufferColumn"
	GsSaveSettingsToStorage               CommandType = "GsSaveSettingsToStorage"
	GsLoadSettingsFromStorage             CommandType = "GsLoadSettingsFromStorage"
	GsSelectSettingsAfterInitialize       CommandType = "GsSelectSettingsAfterInitialize"
	GsSetCharacterColor                   CommandType = "GsSetCharacterColor"
	GsSetBackgroundColor                  CommandType = "GsSetBackgroundColor"
	GsTurnShadingMode                     CommandType = "GsTurnShadingMode"
	GsSetPrintableArea                    CommandType = "GsSetPrintableArea"
	GsDrawLineInPageMode                  CommandType = "GsDrawLineInPageMode"
	GsDrawRectangleInPageMode             CommandType = "GsDrawRectangleInPageMode"
	GsDrawHorizontalLineInStandardMode    CommandType = "GsDrawHorizontalLineInStandardMode"
	GsDrawVerticalLineInStandardMode      CommandType = "GsDrawVerticalLineInStandardMode"
	GsSetReadOperationsOfCheckPaper       CommandType = "GsSetReadOperationsOfCheckPaper"
	GsSetCounterForReverseSidePrint       CommandType = "GsSetCounterForReverseSidePrint"
	GsPDF417SetNumberOfColumns            CommandType = "GsPDF417SetNumberOfColumns"
	GsPDF417SetNumberOfRows               CommandType = "GsPDF417SetNumberOfRows"
	GsPDF417SetWidthOfModule              CommandType = "GsPDF417SetWidthOfModule"
	GsPDF417SetRowHeight                  CommandType = "GsPDF417SetRowHeight"
	GsPDF417SetErrorCorrectionLevel       CommandType = "GsPDF417SetErrorCorrectionLevel"
	GsPDF417SelectOptions                 CommandType = "GsPDF417SelectOptions"
	GsPDF417StoreData                     CommandType = "GsPDF417StoreData"
	GsQRCodeSelectModel                   CommandType = "GsQRCodeSelectModel"
	GsQRCodeSetSizeOfModule               CommandType = "GsQRCodeSetSizeOfModule"
	GsQRCodeSetErrorCorrectionLevel       CommandType = "GsQRCodeSetErrorCorrectionLevel"
	GsQRCodeStoreData                     CommandType = "GsQRCodeStoreData"
	GsMaxiCodeSelectMode                  CommandType = "GsMaxiCodeSelectMode"
	GsMaxiCodeStoreData                   CommandType = "GsMaxiCodeStoreData"
	GsGS1DataBarSetWidthOfModule          CommandType = "GsGS1DataBarSetWidthOfModule"
	GsGS1DataBarSetExpandStackedMaxWidth  CommandType = "GsGS1DataBarSetExpandStackedMaxWidth"
	GsGS1DataBarStoreData                 CommandType = "GsGS1DataBarStoreData"
	GsCompositeSetWidthOfModule           CommandType = "GsCompositeSetWidthOfModule"
	GsCompositeSetExpandStackedMaxWidth   CommandType = "GsCompositeSetExpandStackedMaxWidth"
	GsCompositeSelectHRIFont              CommandType = "GsCompositeSelectHRIFont"
	GsCompositeStoreData                  CommandType = "GsCompositeStoreData"
	GsAztecSetModeTypesAndDataLayer       CommandType = "GsAztecSetModeTypesAndDataLayer"
	GsAztecSetSizeOfModule                CommandType = "GsAztecSetSizeOfModule"
	GsAztecSetErrorCorrectionLevel        CommandType = "GsAztecSetErrorCorrectionLevel"
	GsAztecStoreData                      CommandType = "GsAztecStoreData"
	GsDataMatrixSetSymbolTypeColumnsRows  CommandType = "GsDataMatrixSetSymbolTypeColumnsRows"
	GsDataMatrixSetSizeOfModule           CommandType = "GsDataMatrixSetSizeOfModule"
	GsDataMatrixStoreData                 CommandType = "GsDataMatrixStoreData"
	Gs2DCodePrintSymbol                   CommandType = "Gs2DCodePrintSymbol"
	Gs2DCodeTransmitSize                  CommandType = "Gs2DCodeTransmitSize"
)

// US (line display only)
const (
	UsUnknown                        CommandType = "UsUnknown"
	UsOverwriteMode                  CommandType = "UsOverwriteMode"
	UsVerticalScrollMode             CommandType = "UsVerticalScrollMode"
	UsHorizontalScrollMode           CommandType = "UsHorizontalScrollMode"
	UsMoveCursorUp                   CommandType = "UsMoveCursorUp"
	UsMoveCursorRightMost            CommandType = "UsMoveCursorRightMost"
	UsTurnAnnounciatorOnOff          CommandType = "UsTurnAnnounciatorOnOff"
	UsMoveCursorSpecifiedPosition    CommandType = "UsMoveCursorSpecifiedPosition"
	UsDisplayCharWithComma           CommandType = "UsDisplayCharWithComma"
	UsDisplayCharWithPeriod          CommandType = "UsDisplayCharWithPeriod"
	UsStartEndMacroDefinition        CommandType = "UsStartEndMacroDefinition"
	UsDisplayCharWithSemicolon       CommandType = "UsDisplayCharWithSemicolon"
	UsExecuteSelfTest                CommandType = "UsExecuteSelfTest"
	UsMoveCursorBottom               CommandType = "UsMoveCursorBottom"
	UsTurnCursorDisplayModeOnOff     CommandType = "UsTurnCursorDisplayModeOnOff"
	UsSetDisplayBlinkInterval        CommandType = "UsSetDisplayBlinkInterval"
	UsSetAndDisplayCountTime         CommandType = "UsSetAndDisplayCountTime"
	UsDisplayCounterTime             CommandType = "UsDisplayCounterTime"
	UsBrightnessAdjustment           CommandType = "UsBrightnessAdjustment"
	UsExecuteMacro                   CommandType = "UsExecuteMacro"
	UsTurnReverseMode                CommandType = "UsTurnReverseMode"
	UsStatusConfirmationByDTR        CommandType = "UsStatusConfirmationByDTR"
	UsSelectDisplays                 CommandType = "UsSelectDisplays"
	UsChangeIntoUserSettingMode      CommandType = "UsChangeIntoUserSettingMode"
	UsEndUserSettingMode             CommandType = "UsEndUserSettingMode"
	UsSetMemorySwitchValues          CommandType = "UsSetMemorySwitchValues"
	UsSendMemorySwitchValues         CommandType = "UsSendMemorySwitchValues"
	UsKanjiCharacterModeOnOff        CommandType = "UsKanjiCharacterModeOnOff"
	UsSelectKanjiCharacterCodeSystem CommandType = "UsSelectKanjiCharacterCodeSystem"
)

var unknownTypes = map[CommandType]bool{
	Unknown:    true,
	EscUnknown: true,
	FsUnknown:  true,
	GsUnknown:  true,
	UsUnknown:  true,
}

// IsUnknown reports whether t marks a byte sequence the tokenizer could not
// classify.
func (t CommandType) IsUnknown() bool {
	return unknownTypes[t]
}

func (t CommandType) String() string {
	return string(t)
}
