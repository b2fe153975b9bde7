// Package facility is the registry of HRESULT facility codes listed in [MS-ERREF] section 2.1.2.
//
// Several facilities share a code. Lookups by code return the first facility in byte-wise
// name order, so code 9 resolves to FACILITY_SECURITY rather than FACILITY_SSPI.
package facility

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("facility not found")

// NotFoundError is returned when no facility is registered for a code.
type NotFoundError struct {
	Code uint16
}

func (err *NotFoundError) Error() string {
	return fmt.Sprintf("facility not found error: no facility registered for code %d", err.Code)
}

func (err *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Facility identifies the subsystem an HRESULT belongs to.
type Facility struct {
	Name        string
	Code        uint16
	Description string
}

func (f Facility) String() string {
	return f.Name
}

var sorted = sortByName(facilities)

func sortByName(fs []Facility) []Facility {
	s := slices.Clone(fs)
	slices.SortStableFunc(s, func(a, b Facility) int {
		return strings.Compare(a.Name, b.Name)
	})
	return s
}

// FindByCode returns the facility registered for code.
func FindByCode(code uint16) (Facility, error) {
	for _, f := range sorted {
		if f.Code == code {
			return f, nil
		}
	}
	return Facility{}, &NotFoundError{Code: code}
}

// FindByName returns the facility with the exact symbolic name.
func FindByName(name string) (Facility, bool) {
	i, found := slices.BinarySearchFunc(sorted, name, func(f Facility, name string) int {
		return strings.Compare(f.Name, name)
	})
	if !found {
		return Facility{}, false
	}
	return sorted[i], true
}

// All returns a copy of the registry in code order.
func All() []Facility {
	return slices.Clone(facilities)
}

var facilities = []Facility{
	{"FACILITY_NULL", 0, "The default facility code."},
	{"FACILITY_RPC", 1, "The source of the error code is an RPC subsystem."},
	{"FACILITY_DISPATCH", 2, "The source of the error code is a COM Dispatch."},
	{"FACILITY_STORAGE", 3, "The source of the error code is OLE Storage."},
	{"FACILITY_ITF", 4, "The source of the error code is COM/OLE Interface management."},
	{"FACILITY_WIN32", 7, "This region is reserved to map undecorated error codes into HRESULTs."},
	{"FACILITY_WINDOWS", 8, "The source of the error code is the Windows subsystem."},
	{"FACILITY_SECURITY", 9, "The source of the error code is the Security API layer."},
	{"FACILITY_SSPI", 9, "The source of the error code is the Security API layer."},
	{"FACILITY_CONTROL", 10, "The source of the error code is the control mechanism."},
	{"FACILITY_CERT", 11, "The source of the error code is a certificate client or server."},
	{"FACILITY_INTERNET", 12, "The source of the error code is Wininet related."},
	{"FACILITY_MEDIASERVER", 13, "The source of the error code is the Windows Media Server."},
	{"FACILITY_MSMQ", 14, "The source of the error code is the Microsoft Message Queue."},
	{"FACILITY_SETUPAPI", 15, "The source of the error code is the Setup API."},
	{"FACILITY_SCARD", 16, "The source of the error code is the Smart-card subsystem."},
	{"FACILITY_COMPLUS", 17, "The source of the error code is COM+."},
	{"FACILITY_AAF", 18, "The source of the error code is the Microsoft agent."},
	{"FACILITY_URT", 19, "The source of the error code is .NET CLR."},
	{"FACILITY_ACS", 20, "The source of the error code is the audit collection service."},
	{"FACILITY_DPLAY", 21, "The source of the error code is Direct Play."},
	{"FACILITY_UMI", 22, "The source of the error code is the ubiquitous memory introspection service."},
	{"FACILITY_SXS", 23, "The source of the error code is Side-by-side servicing."},
	{"FACILITY_WINDOWS_CE", 24, "The error code is specific to Windows CE."},
	{"FACILITY_HTTP", 25, "The source of the error code is HTTP support."},
	{"FACILITY_USERMODE_COMMONLOG", 26, "The source of the error code is common Logging support."},
	{"FACILITY_WER", 27, "The source of the error code is Windows Error Reporting."},
	{"FACILITY_USERMODE_FILTER_MANAGER", 31, "The source of the error code is the user mode filter manager."},
	{"FACILITY_BACKGROUNDCOPY", 32, "The source of the error code is background copy control."},
	{"FACILITY_CONFIGURATION", 33, "The source of the error code is configuration services."},
	{"FACILITY_WIA", 33, "The source of the error code is Windows Image Acquisition."},
	{"FACILITY_STATE_MANAGEMENT", 34, "The source of the error code is state management services."},
	{"FACILITY_METADIRECTORY", 35, "The source of the error code is the Microsoft Identity Server."},
	{"FACILITY_WINDOWSUPDATE", 36, "The source of the error code is a Windows update."},
	{"FACILITY_DIRECTORYSERVICE", 37, "The source of the error code is Active Directory."},
	{"FACILITY_GRAPHICS", 38, "The source of the error code is the graphics drivers."},
	{"FACILITY_NAP", 39, "The source of the error code is Network Access Protection."},
	{"FACILITY_SHELL", 39, "The source of the error code is the user Shell."},
	{"FACILITY_TPM_SERVICES", 40, "The source of the error code is the Trusted Platform Module services."},
	{"FACILITY_TPM_SOFTWARE", 41, "The source of the error code is the Trusted Platform Module applications."},
	{"FACILITY_UI", 42, "The source of the error code is the user interface framework."},
	{"FACILITY_XAML", 43, "The source of the error code is the XAML parser."},
	{"FACILITY_ACTION_QUEUE", 44, "The source of the error code is the action queue."},
	{"FACILITY_PLA", 48, "The source of the error code is Performance Logs and Alerts."},
	{"FACILITY_WINDOWS_SETUP", 48, "The source of the error code is Windows Setup."},
	{"FACILITY_FVE", 49, "The source of the error code is Full volume encryption."},
	{"FACILITY_FWP", 50, "The source of the error code is the Firewall Platform."},
	{"FACILITY_WINRM", 51, "The source of the error code is the Windows Resource Manager."},
	{"FACILITY_NDIS", 52, "The source of the error code is the Network Driver Interface."},
	{"FACILITY_USERMODE_HYPERVISOR", 53, "The source of the error code is the Usermode Hypervisor components."},
	{"FACILITY_CMI", 54, "The source of the error code is the Configuration Management Infrastructure."},
	{"FACILITY_USERMODE_VIRTUALIZATION", 55, "The source of the error code is the user mode virtualization subsystem."},
	{"FACILITY_USERMODE_VOLMGR", 56, "The source of the error code is the user mode volume manager."},
	{"FACILITY_BCD", 57, "The source of the error code is the Boot Configuration Database."},
	{"FACILITY_USERMODE_VHD", 58, "The source of the error code is user mode virtual hard disk support."},
	{"FACILITY_USERMODE_HNS", 59, "The source of the error code is the Host Network Service."},
	{"FACILITY_SDIAG", 60, "The source of the error code is System Diagnostics."},
	{"FACILITY_WEBSERVICES", 61, "The source of the error code is the Web Services."},
	{"FACILITY_WINPE", 61, "The source of the error code is the Windows Preinstallation Environment."},
	{"FACILITY_WPN", 62, "The source of the error code is Windows Push Notifications."},
	{"FACILITY_WINDOWS_STORE", 63, "The source of the error code is the Windows Store."},
	{"FACILITY_INPUT", 64, "The source of the error code is Input Services."},
	{"FACILITY_EAP", 66, "The source of the error code is the Extensible Authentication Protocol."},
	{"FACILITY_WINDOWS_DEFENDER", 80, "The source of the error code is a Windows Defender component."},
	{"FACILITY_OPC", 81, "The source of the error code is the open connectivity service."},
	{"FACILITY_XPS", 82, "The source of the error code is the XML Paper Specification."},
	{"FACILITY_RAS", 83, "The source of the error code is Remote Access Service."},
	{"FACILITY_MBN", 84, "The source of the error code is Mobile Broadband."},
	{"FACILITY_POWERSHELL", 84, "The source of the error code is PowerShell."},
	{"FACILITY_EAS", 85, "The source of the error code is Exchange ActiveSync."},
	{"FACILITY_P2P_INT", 98, "The source of the error code is the internal peer-to-peer subsystem."},
	{"FACILITY_P2P", 99, "The source of the error code is the peer-to-peer subsystem."},
	{"FACILITY_DAF", 100, "The source of the error code is the Device Association Framework."},
	{"FACILITY_BLUETOOTH_ATT", 101, "The source of the error code is the Bluetooth Attribute Protocol."},
	{"FACILITY_AUDIO", 102, "The source of the error code is the audio subsystem."},
	{"FACILITY_STATEREPOSITORY", 103, "The source of the error code is the state repository."},
	{"FACILITY_VISUALCPP", 109, "The source of the error code is Visual C++."},
	{"FACILITY_SCRIPT", 112, "The source of the error code is the script engine."},
	{"FACILITY_PARSE", 113, "The source of the error code is the parser."},
	{"FACILITY_BLB", 120, "The source of the error code is the block level backup engine."},
	{"FACILITY_BLB_CLI", 121, "The source of the error code is the block level backup command-line tools."},
	{"FACILITY_WSBAPP", 122, "The source of the error code is the Windows Server Backup application."},
	{"FACILITY_BLBUI", 128, "The source of the error code is the block level backup user interface."},
	{"FACILITY_USN", 129, "The source of the error code is the update sequence number journal."},
	{"FACILITY_USERMODE_VOLSNAP", 130, "The source of the error code is the user mode volume snapshot provider."},
	{"FACILITY_TIERING", 131, "The source of the error code is storage tiering."},
	{"FACILITY_WSB_ONLINE", 133, "The source of the error code is Windows Server Backup online."},
	{"FACILITY_ONLINE_ID", 134, "The source of the error code is the online identity service."},
	{"FACILITY_DLS", 153, "The source of the error code is the downloadable sounds subsystem."},
	{"FACILITY_SOS", 160, "The source of the error code is the SOS debugger extension."},
	{"FACILITY_DEBUGGERS", 176, "The source of the error code is the debuggers."},
	{"FACILITY_USERMODE_SPACES", 231, "The source of the error code is user mode storage spaces."},
	{"FACILITY_DMSERVER", 256, "The source of the error code is the digital media server."},
	{"FACILITY_RESTORE", 256, "The source of the error code is the restore subsystem."},
	{"FACILITY_SPP", 256, "The source of the error code is the Software Protection Platform."},
	{"FACILITY_DEPLOYMENT_SERVICES_SERVER", 257, "The source of the error code is the deployment services server."},
	{"FACILITY_DEPLOYMENT_SERVICES_IMAGING", 258, "The source of the error code is deployment services imaging."},
	{"FACILITY_DEPLOYMENT_SERVICES_MANAGEMENT", 259, "The source of the error code is deployment services management."},
	{"FACILITY_DEPLOYMENT_SERVICES_UTIL", 260, "The source of the error code is the deployment services utilities."},
	{"FACILITY_DEPLOYMENT_SERVICES_BINLSVC", 261, "The source of the error code is the deployment services boot service."},
	{"FACILITY_DEPLOYMENT_SERVICES_PXE", 263, "The source of the error code is the deployment services PXE server."},
	{"FACILITY_DEPLOYMENT_SERVICES_TFTP", 264, "The source of the error code is the deployment services TFTP server."},
	{"FACILITY_DEPLOYMENT_SERVICES_TRANSPORT_MANAGEMENT", 272, "The source of the error code is deployment services transport management."},
	{"FACILITY_DEPLOYMENT_SERVICES_DRIVER_PROVISIONING", 278, "The source of the error code is deployment services driver provisioning."},
	{"FACILITY_DEPLOYMENT_SERVICES_MULTICAST_SERVER", 289, "The source of the error code is the deployment services multicast server."},
	{"FACILITY_DEPLOYMENT_SERVICES_MULTICAST_CLIENT", 290, "The source of the error code is the deployment services multicast client."},
	{"FACILITY_DEPLOYMENT_SERVICES_CONTENT_PROVIDER", 293, "The source of the error code is the deployment services content provider."},
	{"FACILITY_LINGUISTIC_SERVICES", 305, "The source of the error code is Linguistic Services."},
	{"FACILITY_WEB", 885, "The source of the error code is the Web API."},
	{"FACILITY_WEB_SOCKET", 886, "The source of the error code is the WebSocket API."},
	{"FACILITY_AUDIOSTREAMING", 1094, "The source of the error code is audio streaming."},
	{"FACILITY_ACCELERATOR", 1536, "The source of the error code is the accelerator subsystem."},
	{"FACILITY_WMAAECMA", 1996, "The source of the error code is the acoustic echo cancellation module."},
	{"FACILITY_DIRECTMUSIC", 2168, "The source of the error code is DirectMusic."},
	{"FACILITY_DIRECT3D10", 2169, "The source of the error code is Direct3D 10."},
	{"FACILITY_DXGI", 2170, "The source of the error code is DXGI."},
	{"FACILITY_DXGI_DDI", 2171, "The source of the error code is the DXGI driver interface."},
	{"FACILITY_DIRECT3D11", 2172, "The source of the error code is Direct3D 11."},
	{"FACILITY_LEAP", 2184, "The source of the error code is the LEAP subsystem."},
	{"FACILITY_AUDCLNT", 2185, "The source of the error code is the audio client."},
	{"FACILITY_WINCODEC_DWRITE_DWM", 2200, "The source of the error code is the Windows Imaging Component, DirectWrite or the Desktop Window Manager."},
	{"FACILITY_DIRECT2D", 2201, "The source of the error code is Direct2D."},
	{"FACILITY_DEFRAG", 2304, "The source of the error code is the disk defragmenter."},
	{"FACILITY_USERMODE_SDBUS", 2305, "The source of the error code is the user mode secure digital bus."},
	{"FACILITY_JSCRIPT", 2306, "The source of the error code is the JScript engine."},
	{"FACILITY_PIDGENX", 2561, "The source of the error code is the product ID generator."},
}
