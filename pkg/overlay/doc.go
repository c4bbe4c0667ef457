// Package overlay loads operator-maintained field overlays and applies them to
// generated configuration records. Overlays carry what no upstream source
// provides: static dropdown options, API lookups for dynamic selects, output
// transforms and display tweaks.
//
//	planType: MEDICAL        # optional; omit to apply to every plan type
//	fields:
//	  carrier:
//	    api_config:
//	      url: /api/carriers
//	      method: GET
//	      value_key: _id
//	      label_key: [name]
//	  plan_sub_type:
//	    options:
//	      - {label: HMO, value: HMO}
package overlay
