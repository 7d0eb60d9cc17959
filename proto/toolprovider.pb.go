// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: toolprovider.proto

package toolsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InvokeToolRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Abstract operation name, e.g. "company_lookup".
	Op string `protobuf:"bytes,1,opt,name=op,proto3" json:"op,omitempty"`
	// Operation parameters as a canonical JSON object.
	ParamsJson string `protobuf:"bytes,2,opt,name=params_json,json=paramsJson,proto3" json:"params_json,omitempty"`
	// Workflow run the call belongs to, for provider-side audit.
	RunId string `protobuf:"bytes,3,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	// Invocation id, for provider-side idempotency.
	InvocationId  string `protobuf:"bytes,4,opt,name=invocation_id,json=invocationId,proto3" json:"invocation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeToolRequest) Reset() {
	*x = InvokeToolRequest{}
	mi := &file_toolprovider_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeToolRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeToolRequest) ProtoMessage() {}

func (x *InvokeToolRequest) ProtoReflect() protoreflect.Message {
	mi := &file_toolprovider_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeToolRequest.ProtoReflect.Descriptor instead.
func (*InvokeToolRequest) Descriptor() ([]byte, []int) {
	return file_toolprovider_proto_rawDescGZIP(), []int{0}
}

func (x *InvokeToolRequest) GetOp() string {
	if x != nil {
		return x.Op
	}
	return ""
}

func (x *InvokeToolRequest) GetParamsJson() string {
	if x != nil {
		return x.ParamsJson
	}
	return ""
}

func (x *InvokeToolRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *InvokeToolRequest) GetInvocationId() string {
	if x != nil {
		return x.InvocationId
	}
	return ""
}

type InvokeToolResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// List-shaped results as a JSON array of objects. Empty when the op
	// returns a document.
	ItemsJson string `protobuf:"bytes,1,opt,name=items_json,json=itemsJson,proto3" json:"items_json,omitempty"`
	// Document-shaped results as a JSON object. Empty when the op returns
	// a list.
	DataJson string `protobuf:"bytes,2,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"`
	// Provider-reported billed cost. Zero when the provider does not
	// meter per call.
	CostUsd       float64 `protobuf:"fixed64,3,opt,name=cost_usd,json=costUsd,proto3" json:"cost_usd,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvokeToolResponse) Reset() {
	*x = InvokeToolResponse{}
	mi := &file_toolprovider_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvokeToolResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvokeToolResponse) ProtoMessage() {}

func (x *InvokeToolResponse) ProtoReflect() protoreflect.Message {
	mi := &file_toolprovider_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvokeToolResponse.ProtoReflect.Descriptor instead.
func (*InvokeToolResponse) Descriptor() ([]byte, []int) {
	return file_toolprovider_proto_rawDescGZIP(), []int{1}
}

func (x *InvokeToolResponse) GetItemsJson() string {
	if x != nil {
		return x.ItemsJson
	}
	return ""
}

func (x *InvokeToolResponse) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *InvokeToolResponse) GetCostUsd() float64 {
	if x != nil {
		return x.CostUsd
	}
	return 0
}

var File_toolprovider_proto protoreflect.FileDescriptor

const file_toolprovider_proto_rawDesc = "" +
	"\n" +
	"\x12toolprovider.proto\x12\x13prospector.tools.v1\"\x80\x01\n" +
	"\x11InvokeToolRequest\x12\x0e\n" +
	"\x02op\x18\x01 \x01(\tR\x02op\x12\x1f\n" +
	"\vparams_json\x18\x02 \x01(\tR\n" +
	"paramsJson\x12\x15\n" +
	"\x06run_id\x18\x03 \x01(\tR\x05runId\x12#\n" +
	"\rinvocation_id\x18\x04 \x01(\tR\finvocationId\"k\n" +
	"\x12InvokeToolResponse\x12\x1d\n" +
	"\n" +
	"items_json\x18\x01 \x01(\tR\titemsJson\x12\x1b\n" +
	"\tdata_json\x18\x02 \x01(\tR\bdataJson\x12\x19\n" +
	"\bcost_usd\x18\x03 \x01(\x01R\acostUsd2i\n" +
	"\fToolProvider\x12Y\n" +
	"\x06Invoke\x12&.prospector.tools.v1.InvokeToolRequest\x1a'.prospector.tools.v1.InvokeToolResponseB1Z/github.com/outreachkit/prospector/proto;toolsv1b\x06proto3"

var (
	file_toolprovider_proto_rawDescOnce sync.Once
	file_toolprovider_proto_rawDescData []byte
)

func file_toolprovider_proto_rawDescGZIP() []byte {
	file_toolprovider_proto_rawDescOnce.Do(func() {
		file_toolprovider_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_toolprovider_proto_rawDesc), len(file_toolprovider_proto_rawDesc)))
	})
	return file_toolprovider_proto_rawDescData
}

var file_toolprovider_proto_msgTypes = make([]protoimpl.MessageInfo, 2)
var file_toolprovider_proto_goTypes = []any{
	(*InvokeToolRequest)(nil),  // 0: prospector.tools.v1.InvokeToolRequest
	(*InvokeToolResponse)(nil), // 1: prospector.tools.v1.InvokeToolResponse
}
var file_toolprovider_proto_depIdxs = []int32{
	0, // 0: prospector.tools.v1.ToolProvider.Invoke:input_type -> prospector.tools.v1.InvokeToolRequest
	1, // 1: prospector.tools.v1.ToolProvider.Invoke:output_type -> prospector.tools.v1.InvokeToolResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_toolprovider_proto_init() }
func file_toolprovider_proto_init() {
	if File_toolprovider_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_toolprovider_proto_rawDesc), len(file_toolprovider_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_toolprovider_proto_goTypes,
		DependencyIndexes: file_toolprovider_proto_depIdxs,
		MessageInfos:      file_toolprovider_proto_msgTypes,
	}.Build()
	File_toolprovider_proto = out.File
	file_toolprovider_proto_goTypes = nil
	file_toolprovider_proto_depIdxs = nil
}
