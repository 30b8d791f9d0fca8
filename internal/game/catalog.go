package game

// Risk is the threat metadata behind an attack card value.
type Risk struct {
	ID          string
	Name        string
	Description string
}

// Control is the defense metadata behind a defense card value. A control
// neutralizes the risk carrying the same value.
type Control struct {
	ID          string
	Name        string
	Description string
}

// riskCatalog maps attack card values 1-10 to their threat metadata.
var riskCatalog = map[int]*Risk{
	1:  {ID: "phishing", Name: "Phishing Campaign", Description: "Fraudulent emails lure staff into surrendering credentials or opening hostile attachments."},
	2:  {ID: "malware", Name: "Malware Dropper", Description: "A staged loader that plants persistent malicious code on a compromised host."},
	3:  {ID: "sqli", Name: "SQL Injection", Description: "Crafted input escapes a query and reads or rewrites backend data."},
	4:  {ID: "ddos", Name: "DDoS Flood", Description: "A botnet saturates bandwidth and connection pools until services fall over."},
	5:  {ID: "insider", Name: "Insider Threat", Description: "A trusted account quietly exfiltrates data it was never meant to touch."},
	6:  {ID: "creds", Name: "Credential Stuffing", Description: "Breached username/password pairs are replayed against every login form in reach."},
	7:  {ID: "zeroday", Name: "Zero-Day Exploit", Description: "An unpatched, undisclosed vulnerability is weaponized before a fix exists."},
	8:  {ID: "ransomware", Name: "Ransomware Crew", Description: "Operators encrypt everything reachable and price the decryption key."},
	9:  {ID: "supplychain", Name: "Supply Chain Implant", Description: "A poisoned dependency ships attacker code inside a trusted update."},
	10: {ID: "apt", Name: "APT Operator", Description: "A patient, funded adversary with custom tooling and a long campaign plan."},
}

// controlCatalog maps defense card values 1-10 to their control metadata.
// Value v counters the risk of value v.
var controlCatalog = map[int]*Control{
	1:  {ID: "awareness", Name: "Security Awareness Training", Description: "Staff drilled to spot and report lure emails before anyone clicks."},
	2:  {ID: "edr", Name: "Endpoint Detection & Response", Description: "Host agents flag and quarantine staged loaders on touchdown."},
	3:  {ID: "waf", Name: "Input Validation & WAF", Description: "Parameterized queries and an application firewall strip hostile input."},
	4:  {ID: "scrubbing", Name: "Traffic Scrubbing & CDN", Description: "Upstream filtering absorbs the flood before it reaches origin."},
	5:  {ID: "leastpriv", Name: "Least Privilege & DLP", Description: "Tight entitlements and egress monitoring catch data leaving by the wrong door."},
	6:  {ID: "mfa", Name: "Multi-Factor Authentication", Description: "Replayed passwords die at the second factor."},
	7:  {ID: "virtualpatch", Name: "Virtual Patching & IPS", Description: "Inline signatures block exploit traffic while the real fix is built."},
	8:  {ID: "backups", Name: "Immutable Backups", Description: "Offline, versioned copies make the ransom note a minor inconvenience."},
	9:  {ID: "sbom", Name: "SBOM & Artifact Signing", Description: "Every dependency is inventoried and verified before it ships."},
	10: {ID: "hunting", Name: "Threat Hunting Team", Description: "Analysts sweep for the quiet adversary the alerts never fired on."},
}

// assetNames maps face ranks to the display names of the defendable units.
var assetNames = map[Rank]string{
	RankJack:  "Workstation Fleet",
	RankQueen: "Production Server",
	RankKing:  "Domain Controller",
}

// RiskByValue returns the risk metadata for an attack card value, or nil if
// the value is outside 1-10.
func RiskByValue(v int) *Risk {
	return riskCatalog[v]
}

// ControlByValue returns the control metadata for a defense card value, or nil
// if the value is outside 1-10.
func ControlByValue(v int) *Control {
	return controlCatalog[v]
}

// AssetName returns the display name for an asset card rank.
func AssetName(r Rank) string {
	return assetNames[r]
}
